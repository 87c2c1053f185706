package tfm

import (
	"github.com/arthur-debert/nue/pkg/logging"
)

// Match describes the winning folder and the strategy that produced it
type Match struct {
	Candidate
	Strategy string
}

// BestMatch returns the folder in candidates that best fits requested.
// It reports false when the moniker has no alphabetic base, when
// candidates is empty, or when every strategy comes back empty.
func BestMatch(requested string, candidates []string) (string, bool) {
	match, ok := Find(requested, candidates)
	if !ok {
		return "", false
	}
	return match.Path, true
}

// Find is BestMatch with the strategy name and extracted version attached
func Find(requested string, candidates []string) (Match, bool) {
	logger := logging.GetLogger("tfm.matcher")

	moniker, ok := Parse(requested)
	if !ok {
		logger.Debug().Str("tfm", requested).Msg("Requested framework has no alphabetic base")
		return Match{}, false
	}
	if len(candidates) == 0 {
		logger.Debug().Str("tfm", moniker.Raw).Msg("No candidate folders")
		return Match{}, false
	}

	for _, strategy := range Cascade() {
		found := strategy.Find(moniker, candidates)
		if len(found) == 0 {
			logger.Trace().
				Str("tfm", moniker.Raw).
				Str("strategy", strategy.Name).
				Msg("Strategy found no candidates")
			continue
		}

		winner := Winner(found)
		logger.Debug().
			Str("tfm", moniker.Raw).
			Str("strategy", strategy.Name).
			Int("eligible", len(found)).
			Str("folder", winner.Path).
			Str("version", winner.Version).
			Msg("Selected framework folder")
		return Match{Candidate: winner, Strategy: strategy.Name}, true
	}

	logger.Debug().
		Str("tfm", moniker.Raw).
		Strs("candidates", candidates).
		Msg("No strategy matched")
	return Match{}, false
}

// Winner picks the candidate with the greatest version string. Versions
// are compared as plain strings, so "5.0" beats "45"; on a tie the
// earlier candidate is kept. found must not be empty.
func Winner(found []Candidate) Candidate {
	best := found[0]
	for _, c := range found[1:] {
		if c.Version > best.Version {
			best = c
		}
	}
	return best
}
