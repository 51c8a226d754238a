// Package contentstream tokenizes content streams into operator sequences.
//
// A content stream holds the instructions for one page or form: text
// display, path construction and painting, state changes, and image
// placement. The parser turns the raw bytes into (operands, operator) pairs
// without interpreting them:
//
//	parser := contentstream.NewParser(streamData)
//	ops, err := parser.Parse()
//	for _, op := range ops {
//	    fmt.Printf("Operator: %s, Operands: %v\n", op.Operator, op.Operands)
//	}
//
// Inline images (BI ... ID ... EI) are folded into a single "BI" operation
// whose operands are the parameter dictionary and the raw sample bytes, so
// downstream consumers never deal with the raw byte scan for the EI marker.
//
// # Operand Types
//
// Operands can be any object type from the core package:
//   - Numbers (core.Int, core.Real)
//   - Strings (core.String)
//   - Names (core.Name)
//   - Arrays (core.Array)
//   - Dictionaries (core.Dict)
package contentstream
