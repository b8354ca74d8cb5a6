// Package credentials contains the objects exchanged during the OCPI 2.2.1
// credentials handshake.
package credentials
