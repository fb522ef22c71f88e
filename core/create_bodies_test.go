package core

import (
	"errors"
	"strings"
	"testing"

	"github.com/signalsfoundry/astro-environment/model"
)

// recordingEphemerisFactory captures which bodies were already present when
// each body's ephemeris was created, and can be told to fail for one body.
type recordingEphemerisFactory struct {
	present map[string][]string
	failOn  string
	failErr error
}

func (f *recordingEphemerisFactory) CreateEphemeris(body string, s *model.EphemerisSettings, bodies BodyMap) (Ephemeris, error) {
	if f.present == nil {
		f.present = make(map[string][]string)
	}
	f.present[body] = bodies.Names()

	if body == f.failOn {
		return nil, f.failErr
	}
	return &stubEphemeris{origin: s.FrameOrigin, orientation: s.FrameOrientation}, nil
}

// countingObserver tallies setup callbacks.
type countingObserver struct {
	constructed []string
	failures    []string
	adapters    []string
}

func (o *countingObserver) BodyConstructed(name string) { o.constructed = append(o.constructed, name) }
func (o *countingObserver) SubModelFailed(name, domain string) {
	o.failures = append(o.failures, name+"/"+domain)
}
func (o *countingObserver) AdapterAttached(body, origin string) {
	o.adapters = append(o.adapters, body+"<-"+origin)
}

func TestCreateBodies_DependenciesPresentBeforeDependents(t *testing.T) {
	settings := map[string]*model.BodySettings{
		"Sun":   settingsWithOrigin("SSB"),
		"Earth": settingsWithOrigin("Sun"),
		"Moon":  settingsWithOrigin("Earth"),
	}

	factory := &recordingEphemerisFactory{}
	bodies, err := CreateBodies(settings, &Factories{Ephemeris: factory})
	if err != nil {
		t.Fatalf("CreateBodies: %v", err)
	}
	if len(bodies) != 3 {
		t.Fatalf("bodies = %d, want 3", len(bodies))
	}

	sawEarth := false
	for _, name := range factory.present["Moon"] {
		if name == "Earth" {
			sawEarth = true
		}
	}
	if !sawEarth {
		t.Fatalf("Earth should be constructed before Moon, Moon's factory saw %v", factory.present["Moon"])
	}
	if len(factory.present["Sun"]) != 0 {
		t.Fatalf("Sun is a root and should see an empty map, saw %v", factory.present["Sun"])
	}
}

func TestCreateBodies_FirstFailureAbortsWholeCall(t *testing.T) {
	settings := map[string]*model.BodySettings{
		"Sun":   settingsWithOrigin("SSB"),
		"Earth": settingsWithOrigin("Sun"),
		"Moon":  settingsWithOrigin("Earth"),
	}

	cause := errors.New("ephemeris table not found")
	factory := &recordingEphemerisFactory{failOn: "Earth", failErr: cause}
	obs := &countingObserver{}

	bodies, err := CreateBodies(settings, &Factories{Ephemeris: factory}, WithObserver(obs))
	if bodies != nil {
		t.Fatalf("failed setup must not return a partial body map, got %v", bodies.Names())
	}
	if !errors.Is(err, ErrSubModelCreation) {
		t.Fatalf("expected ErrSubModelCreation, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("factory cause should be wrapped, got %v", err)
	}
	for _, want := range []string{"Earth", DomainEphemeris} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error should mention %q: %v", want, err)
		}
	}
	// Moon is ordered after Earth and must never have been attempted.
	if _, attempted := factory.present["Moon"]; attempted {
		t.Fatalf("construction should stop at the first failure")
	}
	if len(obs.failures) != 1 || obs.failures[0] != "Earth/"+DomainEphemeris {
		t.Fatalf("observer failures = %v", obs.failures)
	}
}

func TestCreateBodies_MissingFactoryForDomain(t *testing.T) {
	settings := map[string]*model.BodySettings{
		"Venus": {
			Atmosphere: &model.AtmosphereSettings{Kind: model.AtmosphereExponential, ScaleHeight: 15900},
		},
	}

	_, err := CreateBodies(settings, &Factories{})
	if !errors.Is(err, ErrSubModelCreation) {
		t.Fatalf("expected ErrSubModelCreation, got %v", err)
	}
	if !strings.Contains(err.Error(), DomainAtmosphere) {
		t.Fatalf("error should name the atmosphere domain: %v", err)
	}
}

func TestCreateBodies_CycleFailsBeforeAnyFactoryRuns(t *testing.T) {
	settings := map[string]*model.BodySettings{
		"Alpha": settingsWithOrigin("Beta"),
		"Beta":  settingsWithOrigin("Alpha"),
	}

	factory := &recordingEphemerisFactory{}
	_, err := CreateBodies(settings, &Factories{Ephemeris: factory})
	if !errors.Is(err, ErrCycleDetected) {
		t.Fatalf("expected ErrCycleDetected, got %v", err)
	}
	if len(factory.present) != 0 {
		t.Fatalf("no factory should run when ordering fails, ran for %v", factory.present)
	}
}

func TestCreateBodies_ObserverSeesConstructionOrder(t *testing.T) {
	settings := map[string]*model.BodySettings{
		"Sun":   settingsWithOrigin("SSB"),
		"Earth": settingsWithOrigin("Sun"),
	}

	obs := &countingObserver{}
	_, err := CreateBodies(settings, &Factories{Ephemeris: &recordingEphemerisFactory{}}, WithObserver(obs))
	if err != nil {
		t.Fatalf("CreateBodies: %v", err)
	}
	if len(obs.constructed) != 2 || obs.constructed[0] != "Sun" || obs.constructed[1] != "Earth" {
		t.Fatalf("observer saw construction order %v, want [Sun Earth]", obs.constructed)
	}
}

func TestCreateBodies_BodyWithoutSettingsStillCreated(t *testing.T) {
	settings := map[string]*model.BodySettings{
		"Marker": nil,
	}

	bodies, err := CreateBodies(settings, &Factories{})
	if err != nil {
		t.Fatalf("CreateBodies: %v", err)
	}
	if bodies["Marker"] == nil {
		t.Fatalf("body without settings should still exist in the map")
	}
	if bodies["Marker"].Ephemeris() != nil {
		t.Fatalf("body without settings should have no models")
	}
}
