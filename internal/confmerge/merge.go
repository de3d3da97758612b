// Package confmerge deep-merges two JSON configuration documents.
//
// The merge is union-biased: every key present in either document survives.
// When both sides hold an object at the same key the merge recurses; any
// other collision keeps the current side's value. Key order is first-seen
// order: the current document's keys in their original order, then
// incoming-only keys appended in their original order, at every depth.
package confmerge

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Merge combines two parsed JSON documents and returns the merged raw JSON.
//
// If either root is not an object, the current document is returned
// unchanged; arrays and scalars are never merged. Merge is total: given two
// valid JSON values it always produces a valid JSON value.
//
// The output object is rebuilt member by member rather than addressed by
// path, so any object key (dots, wildcards, the empty string) survives as
// an exact member.
func Merge(current, incoming gjson.Result) string {
	if !current.IsObject() || !incoming.IsObject() {
		return current.Raw
	}

	incomingValues := map[string]gjson.Result{}
	var incomingKeys []string
	incoming.ForEach(func(key, value gjson.Result) bool {
		k := key.String()
		if _, dup := incomingValues[k]; !dup {
			incomingKeys = append(incomingKeys, k)
		}
		incomingValues[k] = value
		return true
	})

	out := []byte{'{'}
	member := func(key, raw string) {
		if len(out) > 1 {
			out = append(out, ',')
		}
		out = gjson.AppendJSONString(out, key)
		out = append(out, ':')
		out = append(out, raw...)
	}

	merged := map[string]bool{}
	current.ForEach(func(key, value gjson.Result) bool {
		k := key.String()
		merged[k] = true
		if inc, shared := incomingValues[k]; shared && value.IsObject() && inc.IsObject() {
			member(k, Merge(value, inc))
		} else {
			// Present on both sides but not both objects: current wins.
			member(k, value.Raw)
		}
		return true
	})
	for _, k := range incomingKeys {
		if !merged[k] {
			member(k, incomingValues[k].Raw)
		}
	}
	out = append(out, '}')
	return string(out)
}

// MergeDocuments validates both inputs as JSON, merges them, and returns
// the merged document serialized with two-space indentation and a trailing
// newline.
func MergeDocuments(current, incoming []byte) ([]byte, error) {
	if !gjson.ValidBytes(current) {
		return nil, fmt.Errorf("current document is not valid JSON")
	}
	if !gjson.ValidBytes(incoming) {
		return nil, fmt.Errorf("incoming document is not valid JSON")
	}

	merged := Merge(gjson.ParseBytes(current), gjson.ParseBytes(incoming))
	return Format([]byte(merged)), nil
}

// Format serializes a JSON document deterministically: two-space indent,
// original key order, trailing newline.
func Format(doc []byte) []byte {
	out := pretty.PrettyOptions(doc, &pretty.Options{
		Indent:   "  ",
		Width:    80,
		SortKeys: false,
	})
	if len(out) == 0 || out[len(out)-1] != '\n' {
		out = append(out, '\n')
	}
	return out
}
