// Package parse parses JSON text into IR nodes.
//
// # Usage
//
//	// Parse JSON text
//	node, err := parse.Parse([]byte(`{"name": "alice", "age": 30}`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse from string
//	node, err := parse.ParseString(`[1, 2, 3]`)
//
//	// Parse with options
//	node, err := parse.Parse(data, parse.MaxDepth(64))
//
// The parser accepts exactly the RFC 8259 grammar and rejects everything
// else with an error naming what was expected and the input offset.
//
// # Related Packages
//
//   - github.com/Jackscalibur/json-parser/ir - IR representation
//   - github.com/Jackscalibur/json-parser/token - scanning
package parse
