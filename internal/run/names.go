/*
Copyright © 2025 Jetstream Contributors
SPDX-License-Identifier: Apache-2.0
*/
package run

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Identifiers holds the per-run names generated once at construction and
// immutable thereafter. The random suffix keeps two runs started within the
// same second from colliding.
type Identifiers struct {
	Bucket    string
	BucketURL string
	StackName string
}

// NewIdentifiers derives run identifiers from the given wall-clock time plus
// a random suffix.
func NewIdentifiers(now time.Time) Identifiers {
	timestamp := now.Unix()
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]

	bucket := fmt.Sprintf("jetstream-test-%d-%s", timestamp, suffix)
	return Identifiers{
		Bucket:    bucket,
		BucketURL: fmt.Sprintf("https://s3.amazonaws.com/%s", bucket),
		// stack names reject hyphens, so the suffix is appended bare
		StackName: fmt.Sprintf("JetstreamTest%d%s", timestamp, suffix),
	}
}
