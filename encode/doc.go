// Package encode renders ir document trees to JSON text.
//
// # Usage
//
//	obj := ir.NewObject()
//	obj.Add("a", ir.FromInt(1))
//	err := encode.Encode(obj, os.Stdout, encode.EncodeFormat(format.Standard))
//
// # Related Packages
//
//   - github.com/jzon-format/go-jzon/ir - document trees
//   - github.com/jzon-format/go-jzon/parse - text to trees
package encode
