package vtu

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
)

// Document is a parsed VTU file. It is never modified after Parse returns.
type Document struct {
	Root *Element
}

// Element is one XML element with its attributes, child elements and
// concatenated character data.
type Element struct {
	Name     string
	Attrs    map[string]string
	Children []*Element
	text     strings.Builder
}

// ParseFile reads and parses a VTU file.
func ParseFile(filename string) (*Document, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Parse(data)
}

// ParseReader reads r to the end and parses the result.
func ParseReader(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return Parse(data)
}

// Parse builds a Document from raw XML. Input that is not a single
// well-formed element tree fails with ErrMalformedDocument.
func Parse(data []byte) (*Document, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = true
	dec.CharsetReader = charsetReader

	var (
		root  *Element
		stack []*Element
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := newElement(t)
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("%w: multiple root elements", ErrMalformedDocument)
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)

		case xml.EndElement:
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(t)
			} else if len(bytes.TrimSpace(t)) > 0 {
				return nil, fmt.Errorf("%w: text outside root element", ErrMalformedDocument)
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrMalformedDocument)
	}
	return &Document{Root: root}, nil
}

// charsetReader decodes non-UTF-8 input named in the XML declaration.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", label, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", label)
	}
	return enc.NewDecoder().Reader(input), nil
}

func newElement(start xml.StartElement) *Element {
	el := &Element{
		Name:  start.Name.Local,
		Attrs: make(map[string]string, len(start.Attr)),
	}
	for _, a := range start.Attr {
		el.Attrs[a.Name.Local] = a.Value
	}
	return el
}

// Attr returns the value of the named attribute, or "" if absent.
func (e *Element) Attr(name string) string {
	return e.Attrs[name]
}

// Text returns the element's own character data.
func (e *Element) Text() string {
	return e.text.String()
}

// Find returns the first descendant (depth-first, document order) with the
// given tag, or nil.
func (e *Element) Find(tag string) *Element {
	for _, c := range e.Children {
		if c.Name == tag {
			return c
		}
		if found := c.Find(tag); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every descendant with the given tag in document order.
func (e *Element) FindAll(tag string) []*Element {
	var out []*Element
	e.walk(func(el *Element) {
		if el.Name == tag {
			out = append(out, el)
		}
	})
	return out
}

// FindByAttr returns the first descendant with the given tag whose attribute
// attr equals value, or nil.
func (e *Element) FindByAttr(tag, attr, value string) *Element {
	var found *Element
	e.walk(func(el *Element) {
		if found == nil && el.Name == tag && el.Attrs[attr] == value {
			found = el
		}
	})
	return found
}

func (e *Element) walk(fn func(*Element)) {
	for _, c := range e.Children {
		fn(c)
		c.walk(fn)
	}
}

// Floats parses the element text as whitespace-separated floating point numbers.
func (e *Element) Floats() ([]float64, error) {
	if err := e.checkASCII(); err != nil {
		return nil, err
	}
	fields := strings.Fields(e.Text())
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: invalid number %q", ErrMalformedDocument, e.label(), f)
		}
		out[i] = v
	}
	return out, nil
}

// Ints parses the element text as whitespace-separated integers.
func (e *Element) Ints() ([]int64, error) {
	if err := e.checkASCII(); err != nil {
		return nil, err
	}
	fields := strings.Fields(e.Text())
	out := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: invalid integer %q", ErrMalformedDocument, e.label(), f)
		}
		out[i] = v
	}
	return out, nil
}

// checkASCII rejects DataArrays whose payload is not inline text.
func (e *Element) checkASCII() error {
	switch format := e.Attrs["format"]; format {
	case "", "ascii":
		return nil
	default:
		return fmt.Errorf("%w: %s uses format %q", ErrUnsupportedFormat, e.label(), format)
	}
}

func (e *Element) label() string {
	if name := e.Attrs["Name"]; name != "" {
		return fmt.Sprintf("%s %q", e.Name, name)
	}
	return e.Name
}
