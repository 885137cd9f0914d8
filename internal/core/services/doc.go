// Package services implements the driving ports: one service per
// business domain, all sharing the same operation pipeline. Parameters
// are assembled into a record, business names are mapped to DocType
// fields, required fields are checked, the call is dispatched through
// the ERP client port, and the outcome is folded into an operation
// envelope. Validation failures never reach the network.
package services
