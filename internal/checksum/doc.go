// Package checksum provides content signatures for virtual files.
//
// Two signatures are computed for every scanned file:
//
//   - Raw checksum: Hash of the exact file content (detects all changes)
//   - Normalized checksum: Hash after removing comments and normalizing whitespace
//     (stays stable when a script is only reformatted)
//
// # Normalization Strategy
//
//  1. Remove "#" and "//" line comments, keeping quoted strings intact
//  2. Convert content to lowercase
//  3. Collapse all whitespace sequences to single spaces
//  4. Trim leading/trailing whitespace
//
// # Example Usage
//
//	calculator := checksum.New()
//	raw := calculator.CalculateRaw([]byte(content))
//	fmt.Println(checksum.Short(raw))
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
