package entities

import "encoding/json"

// ParticipationEventType distinguishes voting events from staking events.
type ParticipationEventType uint8

const (
	ParticipationEventTypeVoting  ParticipationEventType = 0
	ParticipationEventTypeStaking ParticipationEventType = 1
)

// ParticipationEventWithNodes is a registered event and the nodes that track it.
type ParticipationEventWithNodes struct {
	Data  json.RawMessage `json:"data"`
	ID    string          `json:"id"`
	Nodes []Node          `json:"nodes"`
}

// ParticipationEventStatus is the status of an event at a milestone.
type ParticipationEventStatus struct {
	Questions      json.RawMessage `json:"questions,omitempty"`
	Status         string          `json:"status"`
	Checksum       string          `json:"checksum"`
	MilestoneIndex uint32          `json:"milestoneIndex"`
}

// TrackedParticipationOverview is one participation of an output in an event.
type TrackedParticipationOverview struct {
	BlockID             string   `json:"blockId"`
	Amount              string   `json:"amount"`
	Answers             ByteList `json:"answers,omitempty"`
	StartMilestoneIndex uint32   `json:"startMilestoneIndex"`
	EndMilestoneIndex   uint32   `json:"endMilestoneIndex"`
}

// AccountParticipationOverview maps event id to output id to participation.
type AccountParticipationOverview struct {
	Participations map[string]map[string]TrackedParticipationOverview `json:"participations"`
}

// ParticipationEventRegistrationOptions selects which events to register from a node.
type ParticipationEventRegistrationOptions struct {
	EventsToRegister []string `json:"eventsToRegister,omitempty"`
	EventsToIgnore   []string `json:"eventsToIgnore,omitempty"`
	Node             Node     `json:"node"`
}
