package vtu

// twoCells is a quad and a triangle sharing the edge 1-2, with two point fields.
const twoCells = `<?xml version="1.0"?>
<VTKFile type="UnstructuredGrid" version="0.1" byte_order="LittleEndian">
  <UnstructuredGrid>
    <Piece NumberOfPoints="5" NumberOfCells="2">
      <PointData Scalars="temperature">
        <DataArray type="Float64" Name="temperature" format="ascii">
          10 20 30 40 50
        </DataArray>
        <DataArray type="Float32" Name="velocity" NumberOfComponents="3" format="ascii">
          0 0 0  1 0 0  0 1 0  0 0 1  1 1 1
        </DataArray>
        <DataArray type="Float64" Name="pressure" format="ascii">
          -1.5 0 1.5 3 4.5
        </DataArray>
      </PointData>
      <Points>
        <DataArray type="Float32" NumberOfComponents="3" format="ascii">
          0 0 0
          1 0 0
          1 1 0
          0 1 0
          2 0 0
        </DataArray>
      </Points>
      <Cells>
        <DataArray type="Int32" Name="connectivity" format="ascii">0 1 2 3 1 4 2</DataArray>
        <DataArray type="Int32" Name="offsets" format="ascii">4 7</DataArray>
        <DataArray type="UInt8" Name="types" format="ascii">9 5</DataArray>
      </Cells>
    </Piece>
  </UnstructuredGrid>
</VTKFile>
`
