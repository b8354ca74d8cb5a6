// Package cdrs contains the objects of the OCPI 2.2.1 CDRs module. A CDR is
// the final, billable record of a charging session.
package cdrs
