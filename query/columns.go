package query

import "github.com/sakamoro/alicetxt/format"

// queryableColumns lists every column name the engine accepts in Select's
// column list or Filter's column argument, in directory order. tz_specs is
// excluded: it has no scalar element type an Operator can compare against,
// and its values are only ever surfaced embedded in a rendered timestamp.
var queryableColumns = []format.ColumnID{
	format.ColumnTimestamps,
	format.ColumnDates,
	format.ColumnTimes,
	format.ColumnIPv4,
	format.ColumnIPv6,
	format.ColumnUUIDs,
	format.ColumnLogLevels,
	format.ColumnNumbers,
	format.ColumnNumberReprs,
	format.ColumnEmails,
	format.ColumnURLs,
	format.ColumnPaths,
}

func columnIDByName(name string) (format.ColumnID, bool) {
	for _, id := range queryableColumns {
		if id.String() == name {
			return id, true
		}
	}
	return 0, false
}
