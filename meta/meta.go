// meta/meta.go
package meta

// NUM_TERRITORIES defines the classic board size.
const NUM_TERRITORIES = 5

// MAX_NAME_LENGTH defines the longest territory name or army color kept, in characters.
const MAX_NAME_LENGTH = 49

// DIE_FACES defines the number of faces of a battle die.
const DIE_FACES = 6

// MIN_TROOPS defines the garrison every territory holds at rest.
const MIN_TROOPS = 1

// MIN_ATTACK_TROOPS defines the troops a territory needs to launch an attack.
const MIN_ATTACK_TROOPS = 2

// ELIMINATE_COLOR defines the army targeted by the elimination mission.
const ELIMINATE_COLOR = "Verde"

// CONQUER_COUNT defines the territories needed by the conquest mission.
const CONQUER_COUNT = 3

// PLAYER_COLOR defines the army controlled by the player when none is configured.
const PLAYER_COLOR = "Azul"
