package models

import (
	"fmt"
	"strings"
)

// RelationKind describes how one task relates to another
type RelationKind int

const (
	RelationUnknown RelationKind = iota
	RelationSubtask
	RelationParentTask
	RelationRelated
	RelationDuplicateOf
	RelationDuplicates
	RelationBlocking
	RelationBlocked
	RelationPrecedes
	RelationFollows
	RelationCopiedFrom
	RelationCopiedTo
)

type relationInfo struct {
	token   string
	label   string
	aliases []string
}

var relationTable = [...]relationInfo{
	RelationUnknown:     {token: "unknown", label: "Unknown"},
	RelationSubtask:     {token: "subtask", label: "Subtask", aliases: []string{"sub", "child"}},
	RelationParentTask:  {token: "parenttask", label: "Parent task", aliases: []string{"parent"}},
	RelationRelated:     {token: "related", label: "Related", aliases: []string{"rel", "relates"}},
	RelationDuplicateOf: {token: "duplicateof", label: "Duplicate of", aliases: []string{"duplicate-of", "dupof"}},
	RelationDuplicates:  {token: "duplicates", label: "Duplicates", aliases: []string{"dup"}},
	RelationBlocking:    {token: "blocking", label: "Blocking", aliases: []string{"blocks"}},
	RelationBlocked:     {token: "blocked", label: "Blocked by", aliases: []string{"blocked-by", "blockedby"}},
	RelationPrecedes:    {token: "precedes", label: "Precedes", aliases: []string{"before"}},
	RelationFollows:     {token: "follows", label: "Follows", aliases: []string{"after"}},
	RelationCopiedFrom:  {token: "copiedfrom", label: "Copied from", aliases: []string{"copied-from"}},
	RelationCopiedTo:    {token: "copiedto", label: "Copied to", aliases: []string{"copied-to"}},
}

var relationLookup = buildRelationLookup()

func buildRelationLookup() map[string]RelationKind {
	lookup := make(map[string]RelationKind)
	for kind, info := range relationTable {
		lookup[info.token] = RelationKind(kind)
		for _, alias := range info.aliases {
			lookup[alias] = RelationKind(kind)
		}
	}
	return lookup
}

// UnknownRelationKindError is returned when a token names no relation kind
type UnknownRelationKindError struct {
	Token string
}

func (e *UnknownRelationKindError) Error() string {
	return fmt.Sprintf("unknown relation kind %q", e.Token)
}

// ParseRelationKind accepts a wire token or one of its aliases, case-insensitively
func ParseRelationKind(s string) (RelationKind, error) {
	kind, ok := relationLookup[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return RelationUnknown, &UnknownRelationKindError{Token: s}
	}
	return kind, nil
}

// RelationKinds returns every kind in declaration order
func RelationKinds() []RelationKind {
	kinds := make([]RelationKind, len(relationTable))
	for i := range relationTable {
		kinds[i] = RelationKind(i)
	}
	return kinds
}

func (k RelationKind) valid() bool {
	return k >= 0 && int(k) < len(relationTable)
}

// String returns the wire token
func (k RelationKind) String() string {
	if !k.valid() {
		return relationTable[RelationUnknown].token
	}
	return relationTable[k].token
}

// Label returns the human readable name, e.g. "Blocked by"
func (k RelationKind) Label() string {
	if !k.valid() {
		return relationTable[RelationUnknown].label
	}
	return relationTable[k].label
}

// Aliases returns the shorthand tokens accepted besides the wire token
func (k RelationKind) Aliases() []string {
	if !k.valid() {
		return nil
	}
	return append([]string(nil), relationTable[k].aliases...)
}

func (k RelationKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText is lenient so that a kind added server side does not make a
// whole task undecodable; it lands under RelationUnknown.
func (k *RelationKind) UnmarshalText(text []byte) error {
	kind, err := ParseRelationKind(string(text))
	if err != nil {
		*k = RelationUnknown
		return nil
	}
	*k = kind
	return nil
}
