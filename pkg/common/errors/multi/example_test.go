/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package multi

import (
	"fmt"
)

func Example() {
	err := New(fmt.Errorf("failed to close session"), nil, fmt.Errorf("failed to close connection"))

	// Multi errors are returned as regular errors and can be inspected individually
	errs, ok := err.(Errors)
	fmt.Println(ok)
	for _, e := range errs {
		fmt.Println(e)
	}

	// Output:
	// true
	// failed to close session
	// failed to close connection
}
