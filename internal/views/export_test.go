package views

// InflightCount exposes the number of running remote requests of a view.
func (l *lifecycle) InflightCount() int {
	return l.inflightCount()
}

func (l *lifecycle) IsActive() bool {
	return l.isActive()
}

// LockState holds the view mutex until the returned func is called.
func (g *MealPlanGenerator) LockState() func() {
	g.mu.Lock()
	return g.mu.Unlock
}

func (sp *SchedulePanel) LockState() func() {
	sp.mu.Lock()
	return sp.mu.Unlock
}
