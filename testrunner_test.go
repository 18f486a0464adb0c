package shapefall

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "click", "x": 100, "y": 200},
			{"action": "button", "label": "spawn+"},
			{"action": "wait", "frames": 3},
			{"action": "screenshot", "label": "after-click"}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "click" || runner.steps[1].X != 100 || runner.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Action != "button" || runner.steps[2].Label != "spawn+" {
		t.Error("step 2 mismatch")
	}
	if runner.steps[3].Action != "wait" || runner.steps[3].Frames != 3 {
		t.Error("step 3 mismatch")
	}
}

func TestLoadTestScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `not json`},
		{"empty steps", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "jump"}]}`},
		{"unknown button", `{"steps": [{"action": "button", "label": "turbo"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadTestScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadTestScriptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.json")
	if err := os.WriteFile(path, []byte(`{"steps": [{"action": "wait", "frames": 1}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTestScriptFile(path); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := LoadTestScriptFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRunnerStepClick(t *testing.T) {
	g := newTestGame()
	g.sim.State.Add(NewRectangle(0, 100, 200, 200))

	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "click", "x": 50, "y": 150}]}`))
	if err != nil {
		t.Fatal(err)
	}
	g.SetTestRunner(runner)

	// First step call: click queues press+release (2 events).
	runner.step(g)
	if len(g.injectQueue) != 2 {
		t.Fatalf("expected 2 queued events, got %d", len(g.injectQueue))
	}
	if runner.Done() {
		t.Error("runner should not be done while inject queue has events")
	}

	drainInjected(g)

	runner.step(g)
	if !runner.Done() {
		t.Error("runner should be done after all steps executed and queue drained")
	}
	if g.sim.State.Count() != 0 {
		t.Errorf("Count() = %d, want 0 after scripted click", g.sim.State.Count())
	}
}

func TestRunnerStepButton(t *testing.T) {
	g := newTestGame()
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "button", "label": "Gravity -"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	runner.step(g)
	drainInjected(g)
	runner.step(g)

	if !approxEqual(g.sim.State.GravityRate, 0.9, 1e-12) {
		t.Errorf("GravityRate = %v, want 0.9", g.sim.State.GravityRate)
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

func TestRunnerStepWait(t *testing.T) {
	g := newTestGame()
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "wait", "frames": 3}]}`))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		runner.step(g)
		if runner.Done() {
			t.Fatalf("done after %d frames, want 4", i+1)
		}
	}
	runner.step(g)
	if !runner.Done() {
		t.Error("runner should be done after the wait")
	}
}

func TestRunnerStepScreenshot(t *testing.T) {
	g := newTestGame()
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "screenshot", "label": "start"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	runner.step(g)
	if len(g.screenshotQueue) != 1 || g.screenshotQueue[0] != "start" {
		t.Errorf("queue = %v, want [start]", g.screenshotQueue)
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
	runner.step(g)
	if len(g.screenshotQueue) != 1 {
		t.Error("done runner should not act")
	}
}
