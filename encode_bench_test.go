package resxml

import (
	"strings"
	"testing"
)

var benchValue = strings.Repeat("The <b>quick</b> brown fox  jumps over %s lazy %d dogs. ", 32)

func BenchmarkEscapeXMLChars(b *testing.B) {
	b.SetBytes(int64(len(benchValue)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		EscapeXMLChars(benchValue)
	}
}

func BenchmarkEncodeAttr(b *testing.B) {
	b.SetBytes(int64(len(benchValue)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		EncodeAttr(benchValue)
	}
}

func BenchmarkEncodeValue(b *testing.B) {
	b.SetBytes(int64(len(benchValue)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		EncodeValue(benchValue)
	}
}

func BenchmarkFindSubstitutions(b *testing.B) {
	b.SetBytes(int64(len(benchValue)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		findSubstitutions(benchValue, unlimitedSubstitutions)
	}
}
