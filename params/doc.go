// Package params holds the string key/value parameters that the policy and
// operator registries turn into constructed values.
//
// A spec string has the form "name:key=value,key=value"; the part after the
// colon is optional. Values are parsed on demand by the typed getters, which
// fall back to a default when the key is absent.
package params
