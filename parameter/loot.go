package parameter

// LootDropRate is the per-kill chance of a ground item
const LootDropRate = 0.25
