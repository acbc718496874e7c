package game

import (
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

// UniqueIdGenerator produces opaque ids.
type UniqueIdGenerator interface {
	Generate() string
}

type uuidGen struct{}

// NewIdGen returns a generator for chat message ids.
func NewIdGen() UniqueIdGenerator {
	return uuidGen{}
}

func (uuidGen) Generate() string {
	return uuid.NewString()
}

const roomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const roomCodeLength = 4

type roomCodeGen struct{}

// NewRoomCodeGen returns a generator for short shareable room codes.
func NewRoomCodeGen() UniqueIdGenerator {
	return roomCodeGen{}
}

func (roomCodeGen) Generate() string {
	var sb strings.Builder
	for i := 0; i < roomCodeLength; i++ {
		sb.WriteByte(roomCodeAlphabet[rand.Intn(len(roomCodeAlphabet))])
	}
	return sb.String()
}
