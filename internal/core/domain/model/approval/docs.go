// Package approval is the restaurant side of order processing. A paid order
// arrives as an approval request, is checked against the restaurant catalog
// and produces an OrderApproval that is either APPROVED or REJECTED.
package approval
