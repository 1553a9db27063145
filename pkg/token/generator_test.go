// Package token generates collision-resistant identifiers.
package token

import (
	"errors"
	"regexp"
	"strconv"
	"sync"
	"testing"
)

var keyPattern = regexp.MustCompile(`^[a-z][0-9a-z]+$`)

func TestNew_Defaults(t *testing.T) {
	g, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if g.Length() != DefaultLength {
		t.Errorf("Length() = %d, want %d", g.Length(), DefaultLength)
	}
	if g.Algorithm() != AlgorithmSHA3256 {
		t.Errorf("Algorithm() = %q, want %q", g.Algorithm(), AlgorithmSHA3256)
	}
	if g.Fingerprint() == "" {
		t.Error("Fingerprint() should not be empty by default")
	}
}

func TestNew_InvalidLength(t *testing.T) {
	tests := []struct {
		name   string
		length int
	}{
		{"below minimum", 23},
		{"above maximum", 33},
		{"zero", 0},
		{"negative", -1},
		{"far too large", 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(WithLength(tt.length))
			if !errors.Is(err, ErrInvalidLength) {
				t.Errorf("New(WithLength(%d)) error = %v, want ErrInvalidLength", tt.length, err)
			}
		})
	}
}

func TestNew_ValidLengths(t *testing.T) {
	for length := MinLength; length <= MaxLength; length++ {
		t.Run(strconv.Itoa(length), func(t *testing.T) {
			g, err := New(WithLength(length))
			if err != nil {
				t.Fatalf("New(WithLength(%d)) error = %v", length, err)
			}

			key := g.Generate()
			if len(key) != length {
				t.Errorf("Generate() length = %d, want %d", len(key), length)
			}
			if !keyPattern.MatchString(key) {
				t.Errorf("Generate() = %q, want match for %s", key, keyPattern)
			}
		})
	}
}

func TestNew_EmptyFingerprint(t *testing.T) {
	_, err := New(WithFingerprint(""))
	if !errors.Is(err, ErrInvalidFingerprint) {
		t.Errorf("New(WithFingerprint(\"\")) error = %v, want ErrInvalidFingerprint", err)
	}
}

func TestNew_CustomFingerprint(t *testing.T) {
	g, err := New(WithFingerprint("node-7"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if g.Fingerprint() != "node-7" {
		t.Errorf("Fingerprint() = %q, want %q", g.Fingerprint(), "node-7")
	}
}

func TestNew_Algorithms(t *testing.T) {
	tests := []struct {
		name      string
		algorithm string
		want      string
		wantErr   error
	}{
		{"sha3 lowercase", "sha3-256", AlgorithmSHA3256, nil},
		{"sha3 uppercase", "SHA3-256", AlgorithmSHA3256, nil},
		{"sha2 lowercase", "sha-256", AlgorithmSHA256, nil},
		{"sha2 mixed case", "Sha-256", AlgorithmSHA256, nil},
		{"padded identifier", "  sha3-256  ", AlgorithmSHA3256, nil},
		{"md5 rejected", "md5", "", ErrUnsupportedAlgorithm},
		{"sha1 rejected", "sha-1", "", ErrUnsupportedAlgorithm},
		{"empty rejected", "", "", ErrUnsupportedAlgorithm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(WithAlgorithm(tt.algorithm))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("New() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if g.Algorithm() != tt.want {
				t.Errorf("Algorithm() = %q, want %q", g.Algorithm(), tt.want)
			}
		})
	}
}

func TestGenerate_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^[a-z][0-9a-z]{23}$`)

	g, err := New(WithLength(24))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	for i := 0; i < 1000; i++ {
		key := g.Generate()
		if !pattern.MatchString(key) {
			t.Fatalf("Generate() = %q, want match for %s", key, pattern)
		}
	}
}

func TestGenerate_Uniqueness(t *testing.T) {
	const n = 100000

	g, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		key := g.Generate()
		if _, dup := seen[key]; dup {
			t.Fatalf("duplicate key after %d generations: %s", i, key)
		}
		seen[key] = struct{}{}
	}
}

func TestGenerate_Concurrent(t *testing.T) {
	const (
		goroutines = 32
		perWorker  = 2000
	)

	g, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	results := make([][]string, goroutines)
	var wg sync.WaitGroup
	for w := 0; w < goroutines; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			keys := make([]string, perWorker)
			for i := range keys {
				keys[i] = g.Generate()
			}
			results[w] = keys
		}(w)
	}
	wg.Wait()

	seen := make(map[string]struct{}, goroutines*perWorker)
	for _, keys := range results {
		for _, key := range keys {
			if !keyPattern.MatchString(key) || len(key) != DefaultLength {
				t.Fatalf("invalid key under concurrency: %q", key)
			}
			if _, dup := seen[key]; dup {
				t.Fatalf("duplicate key under concurrency: %s", key)
			}
			seen[key] = struct{}{}
		}
	}
}

func TestGenerate_Distribution(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping distribution test in short mode")
	}

	const (
		n       = 120000
		buckets = 20
	)

	g, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	var counts [buckets]int
	for i := 0; i < n; i++ {
		key := g.Generate()
		// The trailing characters are base-36 digits of the digest;
		// bucket by their numeric value.
		suffix, err := strconv.ParseUint(key[len(key)-8:], 36, 64)
		if err != nil {
			t.Fatalf("non-numeric suffix in %q: %v", key, err)
		}
		counts[suffix%buckets]++
	}

	expected := n / buckets
	tolerance := expected / 10
	for bucket, count := range counts {
		if count < expected-tolerance || count > expected+tolerance {
			t.Errorf("bucket %d count = %d, want %d±%d", bucket, count, expected, tolerance)
		}
	}
}

func TestNew_IdenticalConfigIndependent(t *testing.T) {
	a, err := New(WithLength(28), WithFingerprint("same"), WithAlgorithm(AlgorithmSHA256))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	b, err := New(WithLength(28), WithFingerprint("same"), WithAlgorithm(AlgorithmSHA256))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ka, kb := a.Generate(), b.Generate()
	if len(ka) != 28 || len(kb) != 28 {
		t.Errorf("lengths = %d, %d, want 28", len(ka), len(kb))
	}
	if ka == kb {
		t.Errorf("independent instances produced equal keys: %s", ka)
	}
}

func BenchmarkGenerate(b *testing.B) {
	g, err := New()
	if err != nil {
		b.Fatalf("New() error = %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Generate()
	}
}

func BenchmarkGenerate_SHA256(b *testing.B) {
	g, err := New(WithAlgorithm(AlgorithmSHA256))
	if err != nil {
		b.Fatalf("New() error = %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Generate()
	}
}

func BenchmarkGenerate_Parallel(b *testing.B) {
	g, err := New()
	if err != nil {
		b.Fatalf("New() error = %v", err)
	}
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			g.Generate()
		}
	})
}
