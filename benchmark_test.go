package linekit

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
)

func BenchmarkScan(b *testing.B) {
	// ~100KB of log-shaped input, one matching line in ten.
	var sb strings.Builder
	for i := 0; i < 2000; i++ {
		if i%10 == 0 {
			fmt.Fprintf(&sb, "2024-01-02 15:04:05 ERROR request %d failed\n", i)
		} else {
			fmt.Fprintf(&sb, "2024-01-02 15:04:05 INFO request %d served\n", i)
		}
	}
	input := sb.String()

	configs := map[string][]Option{
		"basic":            nil,
		"with_ignore_case": {WithIgnoreCase(true)},
		"with_force_text":  {WithForceText(true)},
		"with_small_sniff": {WithSniffLength(256)},
	}

	for name, opts := range configs {
		b.Run(name, func(b *testing.B) {
			scanner, err := NewScanner("error", opts...)
			if err != nil {
				b.Fatalf("Failed to create scanner: %v", err)
			}

			ctx := context.Background()

			b.SetBytes(int64(len(input)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				err := scanner.Scan(ctx, strings.NewReader(input), io.Discard)
				if err != nil {
					b.Fatalf("Scan failed: %v", err)
				}
			}
		})
	}
}

func BenchmarkSniff(b *testing.B) {
	text := bytes.Repeat([]byte("a perfectly ordinary line of text\n"), 300)

	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := Sniff(bytes.NewReader(text), 0, 0)
		if err != nil {
			b.Fatalf("Sniff failed: %v", err)
		}
	}
}
