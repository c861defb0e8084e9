// SPDX-License-Identifier: MIT

package hex

import "errors"

// ErrUnknownDirection indicates a direction label or value outside the six
// recognized neighbor directions.
var ErrUnknownDirection = errors.New("hex: unknown direction")
