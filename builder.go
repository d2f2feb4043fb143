package correspondence

import (
	"fmt"
	"log/slog"
	"reflect"
	"unsafe"

	"github.com/viant/correspondence/tags"
	"github.com/viant/tagly/format/text"
	"github.com/viant/xunsafe"
)

type (
	// Builder populates a Structure from flat records, grouping them by a node key field
	// and a group key field, i.e.:
	//
	//	type Match struct {
	//		Pixel int `correspondence:"node"`
	//		Image int `correspondence:"group,name=image"`
	//		Score float64
	//	}
	//
	// Key fields are direct fields of the record struct; their values have to be comparable.
	// Keys are matched with ==, so a NaN float key never matches and each such record
	// gets its own node or group.
	//
	// Nodes and groups are created in first-seen order. Removing nodes or groups from the
	// populated structure while still adding records is not supported.
	// Builder is not safe for concurrent use.
	Builder[R any] struct {
		structure *Structure[R]
		isPtr     bool
		node      *keyField
		group     *keyField
		nodes     map[any]*Node[R]
		groups    map[groupKey[R]]*Group[R]
		logger    *slog.Logger
	}

	keyField struct {
		name  string
		field *xunsafe.Field
	}

	groupKey[R any] struct {
		node *Node[R]
		key  any
	}

	recordKeys struct {
		node  any
		group any
	}
)

// NewBuilder creates a builder for record type R, R has to be a struct or a pointer to struct
func NewBuilder[R any](opts ...Option) (*Builder[R], error) {
	options := newOptions(opts)
	rType := reflect.TypeFor[R]()
	structType := rType
	isPtr := structType.Kind() == reflect.Ptr
	if isPtr {
		structType = structType.Elem()
	}
	if structType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected struct or *struct record, got %v: %w", rType, ErrInvalidRecord)
	}
	ret := &Builder[R]{
		structure: NewStructure[R](),
		isPtr:     isPtr,
		nodes:     map[any]*Node[R]{},
		groups:    map[groupKey[R]]*Group[R]{},
		logger:    options.logger,
	}
	if err := ret.init(structType, options.tagName); err != nil {
		return nil, err
	}
	return ret, nil
}

func (b *Builder[R]) init(structType reflect.Type, tagName string) error {
	for i := 0; i < structType.NumField(); i++ {
		structField := structType.Field(i)
		literal, ok := structField.Tag.Lookup(tagName)
		if !ok || !structField.IsExported() {
			continue
		}
		tag, err := tags.Parse(literal)
		if err != nil {
			return fmt.Errorf("invalid %v.%v tag: %v: %w", structType.Name(), structField.Name, err, ErrInvalidRecord)
		}
		if tag.Skip || tag.Role == tags.RoleNone {
			continue
		}
		if !structField.Type.Comparable() {
			return fmt.Errorf("%v.%v %v key has to be comparable, got %v: %w", structType.Name(), structField.Name, tag.Role, structField.Type, ErrInvalidRecord)
		}
		key := &keyField{name: tag.Name, field: xunsafe.NewField(structField)}
		if key.name == "" {
			key.name = text.DetectCaseFormat(structField.Name).Format(structField.Name, text.CaseFormatLowerCamel)
		}
		target := &b.node
		if tag.Role == tags.RoleGroup {
			target = &b.group
		}
		if *target != nil {
			return fmt.Errorf("%v.%v: duplicate %v key field: %w", structType.Name(), structField.Name, tag.Role, ErrInvalidRecord)
		}
		*target = key
	}
	if b.node == nil || b.group == nil {
		return fmt.Errorf("%v requires both %q and %q tagged fields: %w", structType.Name(), tags.RoleNode, tags.RoleGroup, ErrInvalidRecord)
	}
	return nil
}

// Structure returns populated structure
func (b *Builder[R]) Structure() *Structure[R] {
	return b.structure
}

// Add appends records to the group matching record group key within the node matching record node key.
// Keys of all records are read first; if any record is invalid nothing is added.
func (b *Builder[R]) Add(records ...R) error {
	keys := make([]recordKeys, len(records))
	for i := range records {
		ptr := b.pointer(&records[i])
		if ptr == nil {
			return fmt.Errorf("nil %T record at %d: %w", records[i], i, ErrInvalidRecord)
		}
		var err error
		if keys[i].node, err = b.node.value(ptr); err != nil {
			return fmt.Errorf("record at %d: %w", i, err)
		}
		if keys[i].group, err = b.group.value(ptr); err != nil {
			return fmt.Errorf("record at %d: %w", i, err)
		}
	}
	for i, record := range records {
		b.groupFor(b.nodeFor(keys[i].node), keys[i].group).Append(record)
	}
	return nil
}

func (b *Builder[R]) pointer(record *R) unsafe.Pointer {
	if b.isPtr {
		return xunsafe.AsPointer(any(*record))
	}
	return unsafe.Pointer(record)
}

func (b *Builder[R]) nodeFor(key any) *Node[R] {
	if node, ok := b.nodes[key]; ok {
		return node
	}
	node := b.structure.AddNode(key)
	b.nodes[key] = node
	b.logger.Debug("added node", slog.Any(b.node.name, key), slog.Int("index", node.Index()))
	return node
}

func (b *Builder[R]) groupFor(node *Node[R], key any) *Group[R] {
	aKey := groupKey[R]{node: node, key: key}
	if group, ok := b.groups[aKey]; ok {
		return group
	}
	group := node.AddGroup(key)
	b.groups[aKey] = group
	b.logger.Debug("added group", slog.Any(b.node.name, node.Key()), slog.Any(b.group.name, key), slog.Int("index", group.Index()))
	return group
}

func (f *keyField) value(ptr unsafe.Pointer) (any, error) {
	value := f.field.Value(ptr)
	if value != nil && !reflect.ValueOf(value).Comparable() {
		return nil, fmt.Errorf("%v value %T is not a usable key: %w", f.name, value, ErrInvalidRecord)
	}
	return value, nil
}
