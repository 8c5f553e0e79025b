package roundservice

import (
	"context"
	"fmt"
	"log/slog"

	rounddomain "github.com/Black-And-White-Club/golf-trip/app/modules/round/domain"
	"github.com/Black-And-White-Club/golf-trip/app/modules/round/infrastructure/parsers"
)

// ImportScorecard parses an uploaded CSV or XLSX scorecard into a new round.
func (s *RoundService) ImportScorecard(ctx context.Context, tripID rounddomain.TripID, roundName, fileName string, data []byte) (*rounddomain.Round, error) {
	return withTelemetry(s, ctx, "ImportScorecard", tripID, func(ctx context.Context) (*rounddomain.Round, error) {
		return s.importCard(ctx, tripID, roundName, fileName, data)
	})
}

// ImportScorecardURL downloads a scorecard from an allowed host and imports it
// as a new round.
func (s *RoundService) ImportScorecardURL(ctx context.Context, tripID rounddomain.TripID, roundName, rawURL string) (*rounddomain.Round, error) {
	return withTelemetry(s, ctx, "ImportScorecardURL", tripID, func(ctx context.Context) (*rounddomain.Round, error) {
		if s.urlImport == nil {
			return nil, ErrURLImportDisabled
		}
		link, fileName, err := normalizeScorecardURL(rawURL, s.urlImport.AllowedHosts)
		if err != nil {
			return nil, err
		}
		data, err := s.download(ctx, link)
		if err != nil {
			s.logger.WarnContext(ctx, "Scorecard download failed",
				slog.String("trip_id", tripID.String()),
				slog.String("url", link),
				slog.String("error", err.Error()),
			)
			return nil, err
		}
		return s.importCard(ctx, tripID, roundName, fileName, data)
	})
}

func (s *RoundService) importCard(ctx context.Context, tripID rounddomain.TripID, roundName, fileName string, data []byte) (*rounddomain.Round, error) {
	parser, err := s.parsers.GetParser(fileName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedScorecard, err)
	}
	card, err := parser.Parse(data, fileName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedScorecard, err)
	}

	var (
		round *rounddomain.Round
		added int
	)
	_, err = s.edit(ctx, tripID, func(st *Store) error {
		r, n, err := st.ImportScorecard(roundName, card)
		round, added = r, n
		return err
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordImportedPlayers(ctx, added)
	s.logger.InfoContext(ctx, "Scorecard imported",
		slog.String("trip_id", tripID.String()),
		slog.String("round_id", round.ID.String()),
		slog.String("file_name", fileName),
		slog.Int("holes", round.Holes),
		slog.Int("players_added", added),
	)
	return round, nil
}

// ExportScorecard renders a round as an XLSX workbook.
func (s *RoundService) ExportScorecard(ctx context.Context, tripID rounddomain.TripID, roundID rounddomain.RoundID) ([]byte, error) {
	return withTelemetry(s, ctx, "ExportScorecard", tripID, func(ctx context.Context) ([]byte, error) {
		st, err := s.present(ctx, tripID, nil)
		if err != nil {
			return nil, err
		}
		r, err := st.Round(roundID)
		if err != nil {
			return nil, err
		}
		return parsers.WriteXLSX(buildExport(st.Roster(), r))
	})
}
