// Package cookie manages the forced-locale cookie.
//
// The application sets the cookie to pin a locale for the next forwarder
// evaluation; the forwarder reads it ahead of Accept-Language negotiation.
// The value is a plain locale tag, deliberately unsigned: a tampered value
// outside the supported set is simply ignored by the forwarder.
package cookie
