package csvio

import "strings"

// Tokenize splits CSV text into records of fields.
//
// It is a small state machine rather than a strict RFC 4180 reader so that a
// malformed row never aborts the whole input:
//   - a double quote toggles the inside-quotes state
//   - inside quotes, a doubled quote ("") is a literal quote
//   - a comma inside quotes is part of the field, not a separator
//   - a line break (\n or \r\n) inside quotes is part of the field
//   - an unterminated quote swallows the rest of the input into the last field
//
// Every line break outside quotes ends a record, so blank lines come out as a
// record with a single empty field.
func Tokenize(input string) [][]string {
	var (
		records  [][]string
		fields   []string
		field    strings.Builder
		inQuotes bool
	)

	endField := func() {
		fields = append(fields, field.String())
		field.Reset()
	}
	endRecord := func() {
		endField()
		records = append(records, fields)
		fields = nil
	}

	for i := 0; i < len(input); i++ {
		c := input[i]

		if inQuotes {
			if c == '"' {
				if i+1 < len(input) && input[i+1] == '"' {
					field.WriteByte('"')
					i++
					continue
				}
				inQuotes = false
				continue
			}
			field.WriteByte(c)
			continue
		}

		switch c {
		case '"':
			inQuotes = true
		case ',':
			endField()
		case '\r':
			if i+1 < len(input) && input[i+1] == '\n' {
				i++
			}
			endRecord()
		case '\n':
			endRecord()
		default:
			field.WriteByte(c)
		}
	}

	// Flush a last record that has no trailing line break
	if field.Len() > 0 || len(fields) > 0 || inQuotes {
		endRecord()
	}

	return records
}
