package redis

import (
	"fmt"

	"github.com/brawlops/brawlsquad/internal/model"
)

// Key prefix for all squad data
const keyPrefix = "brawlsquad"

// brawlerKey returns the Redis key for a Brawler
func brawlerKey(id model.BrawlerID) string {
	return fmt.Sprintf("%s:brawler:%s", keyPrefix, id)
}

// usernameIndexKey returns the Redis key for the username -> brawler_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// missionKey returns the Redis key for a Mission
func missionKey(id model.MissionID) string {
	return fmt.Sprintf("%s:mission:%s", keyPrefix, id)
}

// missionSetKey returns the Redis key for the SET of all mission ids
func missionSetKey() string {
	return fmt.Sprintf("%s:idx:missions", keyPrefix)
}

// chiefIndexKey returns the Redis key for the SET of missions owned by a brawler
func chiefIndexKey(id model.BrawlerID) string {
	return fmt.Sprintf("%s:idx:chief:%s", keyPrefix, id)
}

// crewKey returns the Redis key for the SET of crew members of a mission
func crewKey(id model.MissionID) string {
	return fmt.Sprintf("%s:crew:%s", keyPrefix, id)
}

// crewForIndexKey returns the Redis key for the SET of missions a brawler crews on
func crewForIndexKey(id model.BrawlerID) string {
	return fmt.Sprintf("%s:idx:crew_for:%s", keyPrefix, id)
}
