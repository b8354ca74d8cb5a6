// Package commands contains the objects of the OCPI 2.2.1 Commands module:
// the requests an eMSP sends to a CPO and the responses and results that
// come back.
package commands
