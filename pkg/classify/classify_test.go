package classify_test

import (
	"testing"

	"github.com/killallgit/otto/pkg/classify"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestClassify(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Classify Suite")
}

var _ = Describe("Classify", func() {
	Describe("tool results", func() {
		It("splits header and body at the first result separator", func() {
			c := classify.Classify("🎯 Tool X Result: 42")

			Expect(c.Kind).To(Equal(classify.KindToolResult))
			Expect(c.Header).To(Equal("🎯 Tool X "))
			Expect(c.Body).To(Equal("42"))
		})

		It("splits at the first separator when the body contains another", func() {
			c := classify.Classify("🎯 yfinance Result: Result: nested")

			Expect(c.Kind).To(Equal(classify.KindToolResult))
			Expect(c.Header).To(Equal("🎯 yfinance "))
			Expect(c.Body).To(Equal("Result: nested"))
		})

		It("trims whitespace around the body", func() {
			c := classify.Classify("🎯 fetch Result:\n  AAPL closed at 231.59  \n")

			Expect(c.Body).To(Equal("AAPL closed at 231.59"))
		})

		It("requires both the marker and the separator", func() {
			Expect(classify.Classify("🎯 no separator here").Kind).NotTo(Equal(classify.KindToolResult))
			Expect(classify.Classify("Result: but no marker").Kind).NotTo(Equal(classify.KindToolResult))
		})
	})

	Describe("agent thoughts", func() {
		It("matches the thoughts marker", func() {
			c := classify.Classify("✨ Manus's thoughts: I should fetch the stock data first")

			Expect(c.Kind).To(Equal(classify.KindThought))
			Expect(c.Text).To(ContainSubstring("fetch the stock data"))
		})
	})

	Describe("tabular output", func() {
		It("matches a header keyword", func() {
			Expect(classify.Classify("Open $181.99 Close $185.59").Kind).To(Equal(classify.KindTabular))
		})

		It("matches a multi-column header", func() {
			Expect(classify.Classify("Ticker  Price  Change").Kind).To(Equal(classify.KindTabular))
		})

		It("matches multi-line text", func() {
			Expect(classify.Classify("first line\nsecond line").Kind).To(Equal(classify.KindTabular))
		})

		It("matches an ISO date", func() {
			Expect(classify.Classify("as of 2024-03-15 the price rose").Kind).To(Equal(classify.KindTabular))
		})

		It("matches a pipe character", func() {
			Expect(classify.Classify("AAPL | 185.59").Kind).To(Equal(classify.KindTabular))
		})

		It("matches three or more commas", func() {
			Expect(classify.Classify("a,b,c,d").Kind).To(Equal(classify.KindTabular))
		})

		It("does not match two commas", func() {
			Expect(classify.Classify("one, two, three").Kind).To(Equal(classify.KindPlain))
		})
	})

	Describe("rule ordering", func() {
		It("prefers tool result over tabular for comma-heavy results", func() {
			c := classify.Classify("🎯 yfinance Result: 1,2,3,4,5")

			Expect(c.Kind).To(Equal(classify.KindToolResult))
			Expect(c.Body).To(Equal("1,2,3,4,5"))
		})

		It("prefers thought over tabular for multi-line thoughts", func() {
			c := classify.Classify("✨ Manus's thoughts: step one\nstep two")

			Expect(c.Kind).To(Equal(classify.KindThought))
		})
	})

	Describe("defaults", func() {
		It("falls through to plain text", func() {
			c := classify.Classify("hello there")

			Expect(c.Kind).To(Equal(classify.KindPlain))
			Expect(c.Text).To(Equal("hello there"))
		})

		It("is total on empty input", func() {
			Expect(classify.Classify("").Kind).To(Equal(classify.KindPlain))
		})

		It("is deterministic", func() {
			input := "🎯 tool Result: 2024-01-01, a, b, c"
			first := classify.Classify(input)
			for i := 0; i < 10; i++ {
				Expect(classify.Classify(input)).To(Equal(first))
			}
		})
	})
})
