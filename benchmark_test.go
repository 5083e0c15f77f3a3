package uuid25

import (
	"testing"
)

func BenchmarkParse_Uuid25(b *testing.B) {
	s := "8dx554y5rzerz1syhqsvsdw8t"
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := Parse(s)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse_Hex(b *testing.B) {
	s := "8da942a41fbe4ca6852c95c473229c7d"
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := Parse(s)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse_Hyphenated(b *testing.B) {
	s := "8da942a4-1fbe-4ca6-852c-95c473229c7d"
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := Parse(s)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkToHyphenated(b *testing.B) {
	u := MustParse("8dx554y5rzerz1syhqsvsdw8t")
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = u.ToHyphenated()
	}
}

func BenchmarkToHex(b *testing.B) {
	u := MustParse("8dx554y5rzerz1syhqsvsdw8t")
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = u.ToHex()
	}
}

func BenchmarkNewV4(b *testing.B) {
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = NewV4()
		}
	})
}
