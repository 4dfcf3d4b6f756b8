// Package propfile parses .properties translation resource files.
//
// Format: UTF-8 text, one "key=value" entry per line. Lines starting with
// '#' or '!' are comments. The separator may be '=' or ':'. There is no
// escaping mechanism; values are taken literally after trimming surrounding
// whitespace. Values may contain bracketed parameter placeholders such as
// "[name]" which are expanded later by the i18n layer.
//
// Parsing preserves every entry, including repeated keys, so callers can
// detect duplicate definitions within a scope.
package propfile
