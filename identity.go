package diaglog

import (
	"reflect"
	"strings"
	"sync"

	"github.com/countincognito/diaglog/core"
)

// identityPrefix tags every invocation-identity marker.
const identityPrefix = "diagnostic-"

// identityKey is the cache key for computed identity markers.
type identityKey struct {
	target core.TypeInfo
	method string
}

// identityCache stores computed identity markers so repeated
// invocations of the same method avoid rebuilding the string.
var identityCache sync.Map

// IdentityName constructs the invocation-identity marker carried by
// every diagnostic record:
//
//	"diagnostic-" + namespace + "." + typeName + "." + methodName
//
// Markers are cached per (type, method) pair.
func IdentityName(t core.TypeInfo, method string) string {
	key := identityKey{target: t, method: method}
	if cached, ok := identityCache.Load(key); ok {
		return cached.(string)
	}

	var b strings.Builder
	b.Grow(len(identityPrefix) + len(t.Namespace) + len(t.Name) + len(method) + 2)
	b.WriteString(identityPrefix)
	b.WriteString(t.Namespace)
	b.WriteByte('.')
	b.WriteString(t.Name)
	b.WriteByte('.')
	b.WriteString(method)

	name := b.String()
	identityCache.Store(key, name)
	return name
}

// TypeInfoFor derives a core.TypeInfo from the Go type T using
// reflection. Pointer types are unwrapped to their element type; the
// package path becomes the namespace. Types with no package path
// (builtins, anonymous types) report an empty namespace.
func TypeInfoFor[T any]() core.TypeInfo {
	t := reflect.TypeOf((*T)(nil)).Elem()
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	name := t.Name()
	if name == "" {
		// Anonymous structs and other unnamed types.
		name = t.String()
	}
	return core.TypeInfo{
		Namespace: t.PkgPath(),
		Name:      name,
	}
}
