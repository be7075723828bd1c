package main

// Action binds callbacks to a running tween: onChange fires with every
// updated value, onFinish once when the tween completes.
type Action struct {
	onChange func(float32)
	onFinish []func()
}

func (a *Action) addOnFinish(f func()) {
	if a.onFinish == nil {
		a.onFinish = make([]func(), 0)
	}
	a.onFinish = append(a.onFinish, f)
}

// updateTweens advances every live tween by dt, runs its callbacks and
// drops the finished ones.
func (g *Game) updateTweens(dt float32) {
	for t, a := range g.Tweens {
		curr, finished := t.Update(dt)
		if a.onChange != nil {
			a.onChange(curr)
		}
		if finished {
			for _, onFinish := range a.onFinish {
				onFinish()
			}
			delete(g.Tweens, t)
		}
	}
}
