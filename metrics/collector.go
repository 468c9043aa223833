package metrics

import (
	"time"

	"war/game"
)

type BattleRecord struct {
	Turn int
	Time time.Time
	game.BattleOutcome
}

type SessionMetric struct {
	SessionID   string
	StartTime   time.Time
	EndTime     time.Time
	Duration    time.Duration
	Battles     int
	Conquests   int
	Rejected    int
	MissionDone bool
}

type Collector interface {
	Start(sessionID string)
	AddBattle(turn int, outcome game.BattleOutcome)
	AddRejected()
	SetMissionDone(value bool)
	Battles() []BattleRecord
	Complete() SessionMetric
}

type collector struct {
	sessionID   string
	startTime   time.Time
	battles     []BattleRecord
	conquests   int
	rejected    int
	missionDone bool
	now         func() time.Time
}

func NewCollector() Collector {
	return &collector{now: time.Now}
}

func (m *collector) Start(sessionID string) {
	m.sessionID = sessionID
	m.startTime = m.now()
	m.battles = nil
	m.conquests = 0
	m.rejected = 0
	m.missionDone = false
}

func (m *collector) AddBattle(turn int, outcome game.BattleOutcome) {
	m.battles = append(m.battles, BattleRecord{Turn: turn, Time: m.now(), BattleOutcome: outcome})
	if outcome.Conquered {
		m.conquests++
	}
}

func (m *collector) AddRejected() {
	m.rejected++
}

func (m *collector) SetMissionDone(value bool) {
	m.missionDone = value
}

func (m *collector) Battles() []BattleRecord {
	battles := make([]BattleRecord, len(m.battles))
	copy(battles, m.battles)
	return battles
}

func (m *collector) Complete() SessionMetric {
	end := m.now()
	return SessionMetric{
		SessionID:   m.sessionID,
		StartTime:   m.startTime,
		EndTime:     end,
		Duration:    end.Sub(m.startTime),
		Battles:     len(m.battles),
		Conquests:   m.conquests,
		Rejected:    m.rejected,
		MissionDone: m.missionDone,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(sessionID string)                       {}
func (m *dummyCollector) AddBattle(turn int, outcome game.BattleOutcome) {}
func (m *dummyCollector) AddRejected()                                 {}
func (m *dummyCollector) SetMissionDone(value bool)                    {}
func (m *dummyCollector) Battles() []BattleRecord                      { return nil }
func (m *dummyCollector) Complete() SessionMetric                      { return SessionMetric{} }
