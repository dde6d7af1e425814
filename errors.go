// SPDX-License-Identifier: EPL-2.0

package batzc

import "errors"

var ErrUnknownFileType = errors.New("unknown file type")
