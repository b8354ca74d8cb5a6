// Package hubclientinfo contains the ClientInfo object a hub publishes about
// the parties connected to it.
package hubclientinfo
