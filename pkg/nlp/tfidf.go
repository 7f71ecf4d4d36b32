package nlp

import (
	"maps"
	"math"
	"regexp"
	"slices"
	"strings"
)

// termPattern matches runs of two or more word characters.
var termPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Terms lowercases doc and returns its terms in order, stop words removed.
func Terms(doc string) []string {
	raw := termPattern.FindAllString(strings.ToLower(doc), -1)
	out := raw[:0]
	for _, t := range raw {
		if !EnglishStopWords.Contains(t) {
			out = append(out, t)
		}
	}
	return out
}

// Similarity scores the lexical similarity of two documents in [0, 100],
// rounded to two decimals. Documents are weighted with TF-IDF over the
// two-document corpus {a, b} and compared by cosine. Returns 0 when either
// document is blank or no terms remain after stop-word removal.
func Similarity(a, b string) float64 {
	a, b = CollapseSpace(a), CollapseSpace(b)
	if a == "" || b == "" {
		return 0
	}
	va, vb := tfidf(Terms(a), Terms(b))
	cos := cosine(va, vb)
	if math.IsNaN(cos) || cos <= 0 {
		return 0
	}
	if cos > 1 {
		cos = 1
	}
	return Round(cos*100, 2)
}

// tfidf returns L2-normalized TF-IDF weights for both documents, using the
// smoothed idf ln((1+n)/(1+df)) + 1 with n = 2.
func tfidf(ta, tb []string) (map[string]float64, map[string]float64) {
	ca, cb := counts(ta), counts(tb)
	const n = 2.0
	idf := func(t string) float64 {
		df := 0.0
		if _, ok := ca[t]; ok {
			df++
		}
		if _, ok := cb[t]; ok {
			df++
		}
		return math.Log((1+n)/(1+df)) + 1
	}
	weigh := func(c map[string]int) map[string]float64 {
		v := make(map[string]float64, len(c))
		var norm float64
		for _, t := range sortedTerms(c) {
			w := float64(c[t]) * idf(t)
			v[t] = w
			norm += w * w
		}
		if norm == 0 {
			return v
		}
		norm = math.Sqrt(norm)
		for t := range v {
			v[t] /= norm
		}
		return v
	}
	return weigh(ca), weigh(cb)
}

func counts(terms []string) map[string]int {
	c := make(map[string]int, len(terms))
	for _, t := range terms {
		c[t]++
	}
	return c
}

// sortedTerms fixes the summation order so results do not depend on map iteration.
func sortedTerms[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}

// cosine of two sparse vectors; 0 if either is a zero vector.
func cosine(a, b map[string]float64) float64 {
	var dot, na, nb float64
	for _, t := range sortedTerms(a) {
		w := a[t]
		dot += w * b[t]
		na += w * w
	}
	for _, t := range sortedTerms(b) {
		w := b[t]
		nb += w * w
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// Round rounds x to the given number of decimal places.
func Round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}
