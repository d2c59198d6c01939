package deps

import "testing"

func TestCheckBinariesMissing(t *testing.T) {
	statuses := CheckBinaries([]Requirement{
		{Name: "Nope", Command: "definitely-not-a-real-binary-xyz", Optional: true},
	})
	if len(statuses) != 1 {
		t.Fatalf("expected 1 status, got %d", len(statuses))
	}
	if statuses[0].Available {
		t.Error("missing binary reported as available")
	}
	if statuses[0].Detail == "" {
		t.Error("missing binary should carry a detail message")
	}
}

func TestCheckBinariesEmptyCommand(t *testing.T) {
	statuses := CheckBinaries([]Requirement{{Name: "Blank"}})
	if statuses[0].Available {
		t.Error("empty command reported as available")
	}
	if statuses[0].Detail != "command not configured" {
		t.Errorf("detail = %q", statuses[0].Detail)
	}
}

func TestMediaRequirements(t *testing.T) {
	reqs := MediaRequirements("ffmpeg", "ffprobe")
	if len(reqs) != 2 {
		t.Fatalf("expected 2 requirements, got %d", len(reqs))
	}
	for _, req := range reqs {
		if !req.Optional {
			t.Errorf("%s should be optional", req.Name)
		}
	}
}
