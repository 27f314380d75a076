// Copyright 2025 The Chaincore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package keys

import "errors"

var (
	// ErrBadPrefix means a text form does not start with its expected tag.
	ErrBadPrefix = errors.New("bad prefix")

	// ErrInvalidLength means key or signature material has the wrong size.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidPublicKey means the bytes do not describe a point on the
	// curve.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrInvalidSecretKey means the bytes do not describe a usable scalar.
	ErrInvalidSecretKey = errors.New("invalid secret key")

	// ErrInvalidSignature means a signature is malformed or uses an
	// unsupported curve.
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrVerification means a well-formed signature does not match the
	// digest and key it was checked against.
	ErrVerification = errors.New("signature verification failed")
)
