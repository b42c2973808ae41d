package csvio

import (
	"fmt"
	"io"
)

// Template is a static authoring aid: the header plus five example rows.
// It is not derived from stored data.
const Template = `Type,Name,Category,Purchase Date,Purchase Price,Current Value,Original Amount,Current Balance,Interest Rate,Start Date,Notes
Asset,Primary Residence,Real Estate,2020-06-15,350000,425000,,,,,"3 bed, 2 bath"
Asset,Family Car,Vehicle,2022-03-01,32000,24000,,,,,
Asset,Emergency Fund,Bank Account,2021-01-10,10000,15000,,,,,High-yield savings
Liability,Home Mortgage,Mortgage,,,,280000,245000,6.5,2020-06-15,30-year fixed
Liability,Car Loan,Auto Loan,,,,28000,15500,4.9,2022-03-01,
`

// WriteTemplate writes Template to w
func WriteTemplate(w io.Writer) error {
	if _, err := io.WriteString(w, Template); err != nil {
		return fmt.Errorf("failed to write csv template: %w", err)
	}
	return nil
}
