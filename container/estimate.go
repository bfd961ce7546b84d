package container

import "github.com/sakamoro/alicetxt/format"

// ColumnEstimate reports one column's uncompressed size before entropy
// coding, for the estimate CLI command's preview of where input bytes go.
type ColumnEstimate struct {
	ColumnID        format.ColumnID
	Name            string
	RowCount        int
	UncompressedLen int
}

// EstimateReport summarizes input's columnar breakdown without compressing
// anything, so it is cheap relative to a full Write.
type EstimateReport struct {
	InputLen int
	RowCount int
	Columns  []ColumnEstimate
}

// Estimate runs the recognizer/skeletonizer and column encoders over input
// (the same path Write takes) but stops short of compression, reporting each
// column's uncompressed size.
func Estimate(input []byte) EstimateReport {
	_, skeletonPayload, payloads, rowCount := buildPayloads(input)

	report := EstimateReport{InputLen: len(input), RowCount: rowCount}
	for _, p := range payloads {
		report.Columns = append(report.Columns, ColumnEstimate{
			ColumnID:        p.id,
			Name:            p.id.String(),
			RowCount:        int(p.rowCount),
			UncompressedLen: len(p.uncompressed),
		})
	}
	report.Columns = append(report.Columns, ColumnEstimate{
		ColumnID:        0,
		Name:            "skeleton",
		RowCount:        int(skeletonPayload.rowCount),
		UncompressedLen: len(skeletonPayload.uncompressed),
	})
	return report
}
