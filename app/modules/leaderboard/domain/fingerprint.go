package leaderboarddomain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	scoredomain "github.com/Black-And-White-Club/golf-trip/app/modules/score/domain"
)

// Fingerprint returns a deterministic hash of everything a ranking shows,
// plus any labels the caller renders alongside it. Two rankings with the same
// fingerprint render identically.
func Fingerprint(r Ranking, labels ...string) string {
	var sb strings.Builder
	for _, l := range labels {
		fmt.Fprintf(&sb, "%q|", l)
	}
	sb.WriteString(string(r.Key))
	sb.WriteByte('|')
	for _, row := range r.Rows {
		t := row.Totals
		fmt.Fprintf(&sb, "%d:%q:%s:%d:%d:%d:%d:%s:%s:%t;",
			row.Position,
			row.Player,
			scoredomain.FormatStrokes(row.Score),
			t.Filled, t.Out, t.In, t.Total,
			scoredomain.FormatStrokes(t.Net),
			scoredomain.FormatVsPar(t.Vs),
			t.ParReady,
		)
	}

	hash := sha256.Sum256([]byte(sb.String()))
	return hex.EncodeToString(hash[:])
}
