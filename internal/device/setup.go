package device

import (
	"fmt"
	"image/color"

	"github.com/DMFirmy/GHud/internal/panel"
	"github.com/DMFirmy/GHud/internal/render"
)

// Monikers mark whether a panel follows the vessel or the target.
const (
	VesselMoniker = "@"
	TargetMoniker = "+"
)

// Panel IDs inside a split. Equal IDs on the two lists show the same thing.
const (
	idVesselInfo = iota + 1
	idTargetInfo
	idVesselGraph
	idTargetGraph
)

var (
	vesselInfoStyle = panel.Style{BackTop: color.RGBA{0xee, 0xee, 0x00, 0xff}, BackBottom: color.RGBA{0xaa, 0xaa, 0x44, 0xff}}
	targetInfoStyle = panel.Style{BackTop: render.ColorLightBlue, BackBottom: render.ColorMediumPurple}
	monoInfoStyle   = panel.Style{BackTop: render.ColorBlack, BackBottom: render.ColorBlack}

	vesselGraphStyle = panel.Style{Orbit: render.ColorYellow}
	targetGraphStyle = panel.Style{Orbit: render.ColorLightBlue}
)

// Setup installs the module set of the device's profile and shows the
// first module.
func (d *Device) Setup() error {
	var first panel.Handle
	if d.Profile.Color {
		split, err := d.addVesselSplit()
		if err != nil {
			return fmt.Errorf("%s: %w", d.Profile.Name, err)
		}
		first = split
		d.AddModule(panel.Panel{ID: 2, Name: "Orbit Graph", Kind: panel.KindGraph, Moniker: VesselMoniker, Style: vesselGraphStyle})
		d.AddModule(panel.Panel{ID: 3, Name: "Target Graph", Kind: panel.KindGraph, Target: true, Moniker: TargetMoniker, Style: targetGraphStyle})
	} else {
		first = d.AddModule(panel.Panel{ID: 1, Name: "Orbit Info", Kind: panel.KindText, Moniker: VesselMoniker, Style: monoInfoStyle})
		d.AddModule(panel.Panel{ID: 2, Name: "Target Info", Kind: panel.KindText, Target: true, Moniker: TargetMoniker, Style: monoInfoStyle})
		graphStyle := panel.Style{Orbit: render.ColorYellow}
		d.AddModule(panel.Panel{ID: 3, Name: "Orbit Graph", Kind: panel.KindGraph, Moniker: VesselMoniker, Style: graphStyle})
		d.AddModule(panel.Panel{ID: 4, Name: "Target Graph", Kind: panel.KindGraph, Target: true, Moniker: TargetMoniker, Style: graphStyle})
	}
	if err := d.Modules.Seed(first); err != nil {
		return fmt.Errorf("%s: %w", d.Profile.Name, err)
	}
	return nil
}

// addVesselSplit builds the color LCD's main module: info and graph
// panels for vessel and target on both halves, each top panel paired with
// the matching panel of the other kind below.
func (d *Device) addVesselSplit() (panel.Handle, error) {
	reg := d.Registry
	add := func(id int) panel.Handle {
		p := panel.Panel{ID: id, Target: id == idTargetInfo || id == idTargetGraph, Moniker: VesselMoniker}
		if p.Target {
			p.Moniker = TargetMoniker
		}
		switch id {
		case idVesselInfo:
			p.Name, p.Kind, p.Style = "Orbit Info", panel.KindText, vesselInfoStyle
		case idTargetInfo:
			p.Name, p.Kind, p.Style = "Target Info", panel.KindText, targetInfoStyle
		case idVesselGraph:
			p.Name, p.Kind, p.Style = "Orbit Graph", panel.KindGraph, vesselGraphStyle
		case idTargetGraph:
			p.Name, p.Kind, p.Style = "Target Graph", panel.KindGraph, targetGraphStyle
		}
		return reg.Add(p)
	}

	top := map[int]panel.Handle{}
	bottom := map[int]panel.Handle{}
	for _, id := range []int{idVesselInfo, idTargetInfo, idVesselGraph, idTargetGraph} {
		top[id] = add(id)
	}
	for _, id := range []int{idVesselGraph, idTargetGraph, idVesselInfo, idTargetInfo} {
		bottom[id] = add(id)
	}
	reg.Pair(top[idVesselInfo], bottom[idVesselGraph])
	reg.Pair(top[idTargetInfo], bottom[idTargetGraph])
	reg.Pair(top[idVesselGraph], bottom[idVesselInfo])
	reg.Pair(top[idTargetGraph], bottom[idTargetInfo])

	primary := panel.NewList(reg, top[idVesselInfo], top[idTargetInfo], top[idVesselGraph], top[idTargetGraph])
	secondary := panel.NewList(reg, bottom[idVesselGraph], bottom[idTargetGraph], bottom[idVesselInfo], bottom[idTargetInfo])
	c, err := panel.NewCycler(primary, top[idVesselInfo], secondary, bottom[idVesselGraph])
	if err != nil {
		return panel.NoHandle, err
	}
	return d.AddModule(panel.Panel{ID: 1, Name: "Vessel", Kind: panel.KindSplit, Split: panel.NewSplit(c)}), nil
}
