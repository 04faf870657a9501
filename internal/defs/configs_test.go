package defs

import "testing"

func TestBundledSkinOverrides(t *testing.T) {
	lib, err := LoadSkinDefinitions("../../configs/skins.json")
	if err != nil {
		t.Fatalf("LoadSkinDefinitions: %v", err)
	}
	if !lib[SkinAINetwork].SpatialIndex {
		t.Error("Expected ai-network override to enable the spatial index")
	}
	if _, err := lib.Get("aurora"); err != nil {
		t.Errorf("Expected bundled aurora skin: %v", err)
	}
}
