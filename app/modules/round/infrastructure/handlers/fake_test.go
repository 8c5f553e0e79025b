package roundhandlers

import (
	"context"

	roundservice "github.com/Black-And-White-Club/golf-trip/app/modules/round/application"
	rounddomain "github.com/Black-And-White-Club/golf-trip/app/modules/round/domain"
)

// FakeService records calls and returns programmable results.
type FakeService struct {
	trace []string

	CreateTripFunc       func(ctx context.Context, name string, roster []string) (*rounddomain.Trip, error)
	GetTripFunc          func(ctx context.Context, tripID rounddomain.TripID) (*rounddomain.Trip, error)
	AddPlayerFunc        func(ctx context.Context, tripID rounddomain.TripID, name string) (*rounddomain.Trip, error)
	RemovePlayerFunc     func(ctx context.Context, tripID rounddomain.TripID, name string) (*rounddomain.Trip, error)
	RenamePlayerFunc     func(ctx context.Context, tripID rounddomain.TripID, oldName, newName string) (*rounddomain.Trip, error)
	CreateRoundFunc      func(ctx context.Context, tripID rounddomain.TripID, req roundservice.CreateRoundRequest) (*rounddomain.Round, error)
	RemoveRoundFunc      func(ctx context.Context, tripID rounddomain.TripID, roundID rounddomain.RoundID) error
	ApplyParTemplateFunc func(ctx context.Context, tripID rounddomain.TripID, roundID rounddomain.RoundID, totalPar int) (*rounddomain.Round, error)
	SetScoreFunc         func(ctx context.Context, tripID rounddomain.TripID, roundID rounddomain.RoundID, player string, hole int, raw string) (rounddomain.Cell, error)
	SetParFunc           func(ctx context.Context, tripID rounddomain.TripID, roundID rounddomain.RoundID, hole int, raw string) (rounddomain.Cell, error)
	SetHandicapFunc      func(ctx context.Context, tripID rounddomain.TripID, roundID rounddomain.RoundID, player, raw string) (rounddomain.Cell, error)
	ImportScorecardFunc  func(ctx context.Context, tripID rounddomain.TripID, roundName, fileName string, data []byte) (*rounddomain.Round, error)
	ImportURLFunc        func(ctx context.Context, tripID rounddomain.TripID, roundName, rawURL string) (*rounddomain.Round, error)
	ExportScorecardFunc  func(ctx context.Context, tripID rounddomain.TripID, roundID rounddomain.RoundID) ([]byte, error)
	SetViewModeFunc      func(ctx context.Context, tripID rounddomain.TripID, roundID rounddomain.RoundID, mode roundservice.ViewMode) error
	OpenRoundFunc        func(ctx context.Context, tripID rounddomain.TripID, roundID rounddomain.RoundID) error
	SessionFunc          func(ctx context.Context, tripID rounddomain.TripID) (roundservice.Session, error)
	WatchFunc            func(ctx context.Context, tripID rounddomain.TripID) (<-chan struct{}, func())
}

var _ roundservice.Service = (*FakeService)(nil)

func (f *FakeService) record(step string) { f.trace = append(f.trace, step) }

// Trace returns the recorded calls.
func (f *FakeService) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeService) CreateTrip(ctx context.Context, name string, roster []string) (*rounddomain.Trip, error) {
	f.record("CreateTrip")
	if f.CreateTripFunc != nil {
		return f.CreateTripFunc(ctx, name, roster)
	}
	return &rounddomain.Trip{ID: rounddomain.NewTripID(), Name: name, Roster: roster}, nil
}

func (f *FakeService) GetTrip(ctx context.Context, tripID rounddomain.TripID) (*rounddomain.Trip, error) {
	f.record("GetTrip")
	if f.GetTripFunc != nil {
		return f.GetTripFunc(ctx, tripID)
	}
	return &rounddomain.Trip{ID: tripID}, nil
}

func (f *FakeService) AddPlayer(ctx context.Context, tripID rounddomain.TripID, name string) (*rounddomain.Trip, error) {
	f.record("AddPlayer")
	if f.AddPlayerFunc != nil {
		return f.AddPlayerFunc(ctx, tripID, name)
	}
	return &rounddomain.Trip{ID: tripID, Roster: rounddomain.Roster{name}}, nil
}

func (f *FakeService) RemovePlayer(ctx context.Context, tripID rounddomain.TripID, name string) (*rounddomain.Trip, error) {
	f.record("RemovePlayer")
	if f.RemovePlayerFunc != nil {
		return f.RemovePlayerFunc(ctx, tripID, name)
	}
	return &rounddomain.Trip{ID: tripID}, nil
}

func (f *FakeService) RenamePlayer(ctx context.Context, tripID rounddomain.TripID, oldName, newName string) (*rounddomain.Trip, error) {
	f.record("RenamePlayer")
	if f.RenamePlayerFunc != nil {
		return f.RenamePlayerFunc(ctx, tripID, oldName, newName)
	}
	return &rounddomain.Trip{ID: tripID, Roster: rounddomain.Roster{newName}}, nil
}

func (f *FakeService) CreateRound(ctx context.Context, tripID rounddomain.TripID, req roundservice.CreateRoundRequest) (*rounddomain.Round, error) {
	f.record("CreateRound")
	if f.CreateRoundFunc != nil {
		return f.CreateRoundFunc(ctx, tripID, req)
	}
	return rounddomain.NewRound(rounddomain.NewRoundID(), req.Name, rounddomain.EighteenHoles, nil), nil
}

func (f *FakeService) RemoveRound(ctx context.Context, tripID rounddomain.TripID, roundID rounddomain.RoundID) error {
	f.record("RemoveRound")
	if f.RemoveRoundFunc != nil {
		return f.RemoveRoundFunc(ctx, tripID, roundID)
	}
	return nil
}

func (f *FakeService) ApplyParTemplate(ctx context.Context, tripID rounddomain.TripID, roundID rounddomain.RoundID, totalPar int) (*rounddomain.Round, error) {
	f.record("ApplyParTemplate")
	if f.ApplyParTemplateFunc != nil {
		return f.ApplyParTemplateFunc(ctx, tripID, roundID, totalPar)
	}
	return rounddomain.NewRound(roundID, "", rounddomain.EighteenHoles, nil), nil
}

func (f *FakeService) SetScore(ctx context.Context, tripID rounddomain.TripID, roundID rounddomain.RoundID, player string, hole int, raw string) (rounddomain.Cell, error) {
	f.record("SetScore")
	if f.SetScoreFunc != nil {
		return f.SetScoreFunc(ctx, tripID, roundID, player, hole, raw)
	}
	return rounddomain.SanitizeScore(raw), nil
}

func (f *FakeService) SetPar(ctx context.Context, tripID rounddomain.TripID, roundID rounddomain.RoundID, hole int, raw string) (rounddomain.Cell, error) {
	f.record("SetPar")
	if f.SetParFunc != nil {
		return f.SetParFunc(ctx, tripID, roundID, hole, raw)
	}
	return rounddomain.SanitizePar(raw), nil
}

func (f *FakeService) SetHandicap(ctx context.Context, tripID rounddomain.TripID, roundID rounddomain.RoundID, player, raw string) (rounddomain.Cell, error) {
	f.record("SetHandicap")
	if f.SetHandicapFunc != nil {
		return f.SetHandicapFunc(ctx, tripID, roundID, player, raw)
	}
	return rounddomain.SanitizeHandicap(raw), nil
}

func (f *FakeService) ImportScorecard(ctx context.Context, tripID rounddomain.TripID, roundName, fileName string, data []byte) (*rounddomain.Round, error) {
	f.record("ImportScorecard")
	if f.ImportScorecardFunc != nil {
		return f.ImportScorecardFunc(ctx, tripID, roundName, fileName, data)
	}
	return rounddomain.NewRound(rounddomain.NewRoundID(), roundName, rounddomain.NineHoles, nil), nil
}

func (f *FakeService) ImportScorecardURL(ctx context.Context, tripID rounddomain.TripID, roundName, rawURL string) (*rounddomain.Round, error) {
	f.record("ImportScorecardURL")
	if f.ImportURLFunc != nil {
		return f.ImportURLFunc(ctx, tripID, roundName, rawURL)
	}
	return nil, roundservice.ErrURLImportDisabled
}

func (f *FakeService) ExportScorecard(ctx context.Context, tripID rounddomain.TripID, roundID rounddomain.RoundID) ([]byte, error) {
	f.record("ExportScorecard")
	if f.ExportScorecardFunc != nil {
		return f.ExportScorecardFunc(ctx, tripID, roundID)
	}
	return []byte("PK"), nil
}

func (f *FakeService) SetViewMode(ctx context.Context, tripID rounddomain.TripID, roundID rounddomain.RoundID, mode roundservice.ViewMode) error {
	f.record("SetViewMode")
	if f.SetViewModeFunc != nil {
		return f.SetViewModeFunc(ctx, tripID, roundID, mode)
	}
	return nil
}

func (f *FakeService) OpenRound(ctx context.Context, tripID rounddomain.TripID, roundID rounddomain.RoundID) error {
	f.record("OpenRound")
	if f.OpenRoundFunc != nil {
		return f.OpenRoundFunc(ctx, tripID, roundID)
	}
	return nil
}

func (f *FakeService) Session(ctx context.Context, tripID rounddomain.TripID) (roundservice.Session, error) {
	f.record("Session")
	if f.SessionFunc != nil {
		return f.SessionFunc(ctx, tripID)
	}
	return roundservice.NewSession(), nil
}

func (f *FakeService) Watch(ctx context.Context, tripID rounddomain.TripID) (<-chan struct{}, func()) {
	f.record("Watch")
	if f.WatchFunc != nil {
		return f.WatchFunc(ctx, tripID)
	}
	return make(chan struct{}), func() {}
}
