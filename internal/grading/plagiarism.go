package grading

import "strings"

// DefaultPlagiarismThreshold is the cosine similarity above which a
// reference item counts as a plagiarism match.
const DefaultPlagiarismThreshold = 0.8

// maxMatchedPhrases caps how many verbatim snippets are collected per match.
const maxMatchedPhrases = 5

// CorpusEntry is one reference text to check submissions against.
type CorpusEntry struct {
	Source string `json:"source"`
	Text   string `json:"text"`
}

// Detector compares a text answer against a reference corpus. A zero
// Detector uses DefaultPlagiarismThreshold.
type Detector struct {
	Threshold float64
}

// Detect returns every above-threshold match with evidence snippets. It
// never fails: any internal problem yields an empty, non-plagiarized
// report.
func (d Detector) Detect(text string, corpus []CorpusEntry) (report PlagiarismReport) {
	defer func() {
		if r := recover(); r != nil {
			report = PlagiarismReport{Matches: []PlagiarismMatch{}}
		}
	}()

	threshold := d.Threshold
	if threshold <= 0 {
		threshold = DefaultPlagiarismThreshold
	}

	report = PlagiarismReport{Matches: []PlagiarismMatch{}}
	for _, entry := range corpus {
		similarity := CosineSimilarity(text, entry.Text)
		if similarity <= threshold {
			continue
		}

		report.Matches = append(report.Matches, PlagiarismMatch{
			Source:     entry.Source,
			Similarity: similarity,
			Matched:    sharedPhrases(text, entry.Text),
		})
		if similarity > report.PlagiarismScore {
			report.PlagiarismScore = similarity
		}
	}

	report.IsPlagiarized = len(report.Matches) > 0
	return report
}

// sharedPhrases slides a 3-word window over the candidate text and collects
// phrases found verbatim in the reference text.
func sharedPhrases(text, reference string) []string {
	words := strings.Fields(Normalize(text))
	ref := " " + Normalize(reference) + " "

	var phrases []string
	seen := make(map[string]struct{})
	for i := 0; i+3 <= len(words) && len(phrases) < maxMatchedPhrases; i++ {
		phrase := strings.Join(words[i:i+3], " ")
		if _, dup := seen[phrase]; dup {
			continue
		}
		if strings.Contains(ref, " "+phrase+" ") {
			phrases = append(phrases, phrase)
			seen[phrase] = struct{}{}
		}
	}
	return phrases
}
