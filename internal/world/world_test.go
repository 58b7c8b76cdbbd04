package world

import "testing"

func TestValidate(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestNameFallsBackToEnglish(t *testing.T) {
	d := Districts["downtown"]
	if got := d.Name("de"); got != "Downtown" {
		t.Errorf("Name(de) = %q, want English fallback", got)
	}
	if got := d.Name("fa"); got != "مرکز شهر" {
		t.Errorf("Name(fa) = %q, want Persian name", got)
	}
}

func TestDowntownLayout(t *testing.T) {
	d, ok := Districts["downtown"]
	if !ok {
		t.Fatal("downtown missing from map")
	}
	if len(d.Connections) != 3 {
		t.Errorf("downtown connections = %v, want 3", d.Connections)
	}
	if len(d.Locations) != 2 {
		t.Errorf("downtown locations = %v, want 2", d.Locations)
	}
	if !Locations["vip_lounge"].RequiresVIP {
		t.Error("vip_lounge should be VIP gated")
	}
	if Locations["the_onyx_bar"].RequiresVIP {
		t.Error("the_onyx_bar should not be VIP gated")
	}
}

func TestDistrictExists(t *testing.T) {
	if !DistrictExists("the_plaza") {
		t.Error("DistrictExists(the_plaza) = false")
	}
	if DistrictExists("atlantis") {
		t.Error("DistrictExists(atlantis) = true")
	}
}
