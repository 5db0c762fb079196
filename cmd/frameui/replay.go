package main

import (
	"fmt"

	"frameui/internal/headless"
	"frameui/internal/logger"
)

// replay feeds a recorded script through the demo without a window and
// prints what the tree reported each frame.
func replay(app *demo, path string, log *logger.Logger) error {
	s, err := headless.LoadScript(path)
	if err != nil {
		return err
	}
	frames, err := s.Frames()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	rec := headless.NewRecorder()
	log.Logf("replay %s: %d frames", path, len(frames))
	for i, f := range frames {
		cursor := app.Update(f)
		rec.Reset()
		app.Draw(rec)
		if t := app.root.Target(); t != nil {
			st := t.State()
			fmt.Printf("%4d  id=%-3d %-6s %-12s cursor=%s draws=%d\n", i, st.ID, t.Kind(), st.Event, cursor, len(rec.Cmds))
		} else {
			fmt.Printf("%4d  -                          cursor=%s draws=%d\n", i, cursor, len(rec.Cmds))
		}
	}
	fmt.Printf("name=%q status=%q\n", app.name.Text, app.status.Text)
	return nil
}
