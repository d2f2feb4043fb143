package tags

import (
	"fmt"
	"strings"
)

// Role represents a field role in a correspondence record
type Role string

const (
	// RoleNone marks a payload field
	RoleNone Role = ""
	// RoleNode marks the node key field
	RoleNode Role = "node"
	// RoleGroup marks the secondary group key field
	RoleGroup Role = "group"
)

// Tag represents a parsed correspondence field tag, i.e. `correspondence:"node,name=pixel"`
type Tag struct {
	Role Role
	Name string
	Skip bool
}

// Parse parses tag literal value
func Parse(literal string) (*Tag, error) {
	ret := &Tag{}
	literal = strings.TrimSpace(literal)
	if literal == "-" {
		ret.Skip = true
		return ret, nil
	}
	err := Values(literal).MatchPairs(func(key, value string) error {
		switch strings.ToLower(key) {
		case string(RoleNode), string(RoleGroup):
			role := Role(strings.ToLower(key))
			if ret.Role != RoleNone && ret.Role != role {
				return fmt.Errorf("conflicting roles %v and %v in %q", ret.Role, role, literal)
			}
			ret.Role = role
		case "name":
			ret.Name = value
		default:
			return fmt.Errorf("unsupported tag option %q in %q", key, literal)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ret, nil
}
