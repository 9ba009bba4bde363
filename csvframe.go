// # csvframe: CSV files in and out of typed tables
//
// csvframe loads a comma-separated file with a header row into a Table of
// named, typed columns and writes a Table back out without any synthetic row
// index column.
//
// # Features
//
// - `LoadData` / `SaveData` for the common case, `Loader` / `Saver` for delimiter, quoting, missing-value and filesystem settings.
// - Per-column type inference: int64, float64, bool or string, with common missing-value spellings read as nil.
// - Header cleanup: empty names become `Unnamed: <i>`, repeats become `name.1`, `name.2`.
// - Atomic saves through a temporary sibling file, locale-independent cell text, byte-identical output for identical tables.
// - Typed errors: `FileAccessError`, `ParseError` (line and column), `SerializationError`.
// - Struct binding through `FromStructs` and `Table.DecodeRows`.
//
// # Getting Started
//
//	t, err := csvframe.LoadData("people.csv")
//	if err != nil {
//		return err
//	}
//	return csvframe.SaveData(t, "people-copy.csv")
package csvframe
