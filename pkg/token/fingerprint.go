// Package token generates collision-resistant identifiers.
package token

import (
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/spaolacci/murmur3"
)

// defaultFingerprint derives a process fingerprint from the runtime
// identity: hostname, pid and Go version, folded through murmur3 and
// rendered in base-36. The fingerprint is an entropy input, not a
// secret, so a non-cryptographic hash is sufficient.
//
// Returns "" when the environment yields no identity at all; the
// constructor rejects that with ErrInvalidFingerprint.
func defaultFingerprint() string {
	host, err := os.Hostname()
	if err != nil {
		host = os.Getenv("HOSTNAME")
	}

	identity := strings.Join([]string{
		host,
		strconv.Itoa(os.Getpid()),
		runtime.Version(),
	}, "|")
	if identity == "||" {
		return ""
	}

	return strconv.FormatUint(murmur3.Sum64([]byte(identity)), 36)
}
