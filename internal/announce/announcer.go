package announce

import (
	"encoding/json"
	"fmt"
	"sync"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/minaret-dev/minaret/internal/prayer"
)

// Payload is the message published to mosques/<id>/athan. Event is "next"
// when the upcoming prayer changes and "athan" when its countdown runs out.
type Payload struct {
	Event            string `json:"event"`
	MosqueID         int    `json:"mosque_id"`
	Name             string `json:"name"`
	Time             string `json:"time"`
	TimeDisplay      string `json:"time_display"`
	SecondsRemaining int    `json:"seconds_remaining"`
	Countdown        string `json:"countdown"`
}

// Announcer pushes upcoming-prayer updates to display boards over MQTT. It
// runs one Countdown per announced mosque; each publishes when its next
// prayer changes and again when the countdown hits zero.
type Announcer struct {
	client mqtt.Client

	mu         sync.Mutex
	countdowns map[int]*prayer.Countdown
	lastName   map[int]string
}

var connectHandler mqtt.OnConnectHandler = func(client mqtt.Client) {
	log.Info().Msg("connected to MQTT broker")
}

var connectLostHandler mqtt.ConnectionLostHandler = func(client mqtt.Client, err error) {
	log.Warn().Err(err).Msg("MQTT connection lost")
}

func NewAnnouncer(brokerURL, clientID string) (*Announcer, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.OnConnect = connectHandler
	opts.OnConnectionLost = connectLostHandler

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}

	return &Announcer{
		client:     client,
		countdowns: make(map[int]*prayer.Countdown),
		lastName:   make(map[int]string),
	}, nil
}

// UpdateTimes replaces a mosque's prayer times, starting its countdown on
// first sight. The replacement recomputes synchronously, so boards see fresh
// data without waiting for the next tick.
func (a *Announcer) UpdateTimes(mosqueID int, times prayer.DailyTimes) {
	a.mu.Lock()
	cd, ok := a.countdowns[mosqueID]
	a.mu.Unlock()

	if ok {
		cd.SetTimes(times)
		return
	}

	cd = prayer.NewCountdown(times)
	cd.OnChange = func(next *prayer.NextPrayer) { a.observe(mosqueID, next) }

	a.mu.Lock()
	a.countdowns[mosqueID] = cd
	a.mu.Unlock()

	cd.Start()
}

// Drop stops and forgets a mosque's countdown.
func (a *Announcer) Drop(mosqueID int) {
	a.mu.Lock()
	cd, ok := a.countdowns[mosqueID]
	delete(a.countdowns, mosqueID)
	delete(a.lastName, mosqueID)
	a.mu.Unlock()

	if ok {
		cd.Stop()
	}
}

// Close stops every countdown and disconnects from the broker.
func (a *Announcer) Close() {
	a.mu.Lock()
	for id, cd := range a.countdowns {
		cd.Stop()
		delete(a.countdowns, id)
	}
	a.mu.Unlock()

	a.client.Disconnect(250)
}

func (a *Announcer) observe(mosqueID int, next *prayer.NextPrayer) {
	if next == nil {
		return
	}

	a.mu.Lock()
	previous := a.lastName[mosqueID]
	a.lastName[mosqueID] = next.Name
	a.mu.Unlock()

	if next.Name != previous {
		a.publish(buildPayload("next", mosqueID, next))
	}
	// last tick before the prayer arrives; the following tick already counts
	// down to the one after
	if next.SecondsRemaining <= 1 {
		a.publish(buildPayload("athan", mosqueID, next))
	}
}

func (a *Announcer) publish(p Payload) {
	body, err := json.Marshal(p)
	if err != nil {
		return
	}
	topic := fmt.Sprintf("mosques/%d/athan", p.MosqueID)
	if token := a.client.Publish(topic, 1, false, body); token.Wait() && token.Error() != nil {
		log.Warn().Err(token.Error()).Str("topic", topic).Msg("failed to publish athan update")
	}
}

func buildPayload(event string, mosqueID int, next *prayer.NextPrayer) Payload {
	countdown := prayer.FormatCountdown(next.SecondsRemaining)
	return Payload{
		Event:            event,
		MosqueID:         mosqueID,
		Name:             next.Name,
		Time:             next.Time,
		TimeDisplay:      prayer.To12Hour(next.Time),
		SecondsRemaining: next.SecondsRemaining,
		Countdown:        countdown,
	}
}
