package content

// DefaultDefinitions is the stock content shipped with the engine.
func DefaultDefinitions() Definitions {
	return Definitions{
		Archetypes: []Archetype{
			{Name: "ANARCHIST", Side: SideResistance, PreferredTeam: "Civil", PreferredGear: "Explosives", NodeAction: "Sabotage", Sprite: "anarchist"},
			{Name: "BLOGGER", Side: SideResistance, PreferredTeam: "Media", PreferredGear: "Signal Booster", NodeAction: "Propaganda", Sprite: "blogger"},
			{Name: "FIXER", Side: SideResistance, PreferredTeam: "Control", PreferredGear: "Fake ID", NodeAction: "Gain Gear", Sprite: "fixer"},
			{Name: "HACKER", Side: SideResistance, PreferredTeam: "Probe", PreferredGear: "Code Breaker", NodeAction: "Hack Security", Sprite: "hacker"},
			{Name: "HEAVY", Side: SideResistance, PreferredTeam: "Damage", PreferredGear: "Sniper Rifle", NodeAction: "Neutralise", Sprite: "heavy"},
			{Name: "OBSERVER", Side: SideResistance, PreferredTeam: "Spider", PreferredGear: "Night Vision", NodeAction: "Insert Tracer", Sprite: "observer"},
			{Name: "OPERATOR", Side: SideResistance, PreferredTeam: "Erasure", PreferredGear: "Drone", NodeAction: "Bypass", Sprite: "operator"},
			{Name: "PLANNER", Side: SideResistance, PreferredTeam: "Control", PreferredGear: "Blueprints", NodeAction: "Get Intel", Sprite: "planner"},
			{Name: "RECRUITER", Side: SideResistance, PreferredTeam: "Civil", PreferredGear: "Safe House Keys", NodeAction: "Recruit", Sprite: "recruiter"},
			{Name: "AUDITOR", Side: SideAuthority, PreferredTeam: "Control", NodeAction: "Audit", Sprite: "auditor"},
			{Name: "ENFORCER", Side: SideAuthority, PreferredTeam: "Damage", NodeAction: "Crackdown", Sprite: "enforcer"},
			{Name: "HANDLER", Side: SideAuthority, PreferredTeam: "Spider", NodeAction: "Run Informant", Sprite: "handler"},
			{Name: "INSPECTOR", Side: SideAuthority, PreferredTeam: "Probe", NodeAction: "Inspect", Sprite: "inspector"},
			{Name: "STRATEGIST", Side: SideAuthority, PreferredTeam: "Erasure", NodeAction: "Plan Sweep", Sprite: "strategist"},
			{Name: "SPIN DOCTOR", Side: SideAuthority, PreferredTeam: "Media", NodeAction: "Counter Propaganda", Sprite: "spindoctor"},
		},
		Traits: []TraitDef{
			{Name: "Ordinary", Side: SideBoth, Description: "Nothing out of the ordinary"},
			{Name: "Nervous", Side: SideBoth, Description: "Twice as likely to break down", Effects: []string{"ActorBreakdownChanceHigh"}},
			{Name: "Stoic", Side: SideBoth, Description: "Half as likely to break down", Effects: []string{"ActorBreakdownChanceLow"}},
			{Name: "Unflappable", Side: SideBoth, Description: "Never breaks down", Effects: []string{"ActorBreakdownChanceNone"}},
			{Name: "Detective", Side: SideBoth, Description: "Three times as likely to uncover secrets", Effects: []string{"ActorSecretChanceHigh"}},
			{Name: "Oblivious", Side: SideBoth, Description: "Never uncovers secrets", Effects: []string{"ActorSecretChanceNone"}},
			{Name: "Blabbermouth", Side: SideBoth, Description: "Tells everyone any secret they learn", Effects: []string{"ActorSecretTellAll"}},
			{Name: "Vindictive", Side: SideBoth, Description: "Never drops a blackmail threat", Effects: []string{"ActorBlackmailNone"}},
			{Name: "Principled", Side: SideBoth, Description: "Three times as likely to resign over your conduct", Effects: []string{"ActorResignHigh"}},
			{Name: "Loyal", Side: SideBoth, Description: "Never resigns over your conduct", Effects: []string{"ActorResignNone"}},
			{Name: "Thin Skinned", Side: SideBoth, Description: "Never takes a conflict well", Effects: []string{"ActorConflictNoGood"}},
			{Name: "Easy Going", Side: SideBoth, Description: "Never has a relationship conflict", Effects: []string{"ActorConflictNone"}},
			{Name: "Stubborn", Side: SideBoth, Description: "Won't resign in a conflict", Effects: []string{"ActorConflictNoResign"}},
			{Name: "Well Connected", Side: SideBoth, Description: "Twice as costly to remove", Effects: []string{"ActorManageCostHigh"}},
			{Name: "Expendable", Side: SideBoth, Description: "Half as costly to remove", Effects: []string{"ActorManageCostLow"}},
			{Name: "Patient", Side: SideBoth, Description: "Waits twice as long in reserve", Effects: []string{"ActorReserveTimerDoubled"}},
			{Name: "Impatient", Side: SideBoth, Description: "Waits half as long in reserve", Effects: []string{"ActorReserveTimerHalved"}},
			{Name: "Psychopath", Side: SideResistance, Description: "Might kill a colleague in a conflict", Effects: []string{"ActorConflictKill"}},
		},
		Conditions: []Condition{
			{Name: CondStressed, Type: ConditionBad},
			{Name: CondBlackmailer, Type: ConditionBad},
			{Name: CondUnhappy, Type: ConditionBad},
			{Name: CondCorrupt, Type: ConditionBad, Incompatible: true},
			{Name: CondIncompetent, Type: ConditionBad, Incompatible: true},
			{Name: CondQuestionable, Type: ConditionBad, Incompatible: true},
			{Name: "STAR", Type: ConditionGood},
		},
		Secrets: []SecretTemplate{
			{Name: "Affair", Side: SideBoth, Description: "An affair with a colleague's partner", Effects: []string{"PlayerRenownMinus2"}},
			{Name: "Gambling Debts", Side: SideBoth, Description: "Owes money to the wrong people", Effects: []string{"PlayerRenownMinus1", "PlayerQuestionable"}},
			{Name: "Hidden Cache", Side: SideResistance, Description: "A stash of weapons nobody was told about", Effects: []string{"PlayerInvisibilityMinus1"}},
			{Name: "Skimming", Side: SideBoth, Description: "Helps themselves to the funds", Effects: []string{"PlayerCorrupt"}},
			{Name: "Botched Raid", Side: SideAuthority, Description: "Covered up a raid that went badly wrong", Effects: []string{"PlayerIncompetent"}},
		},
		Conflicts: []Conflict{
			{Name: "Forgives", Side: SideBoth, Type: OutcomeGood, Chance: ChanceLow, Effect: "ActorMotivationPlus1",
				Text: "%s decides to let it go", Detail: "Motivation recovers a little"},
			{Name: "Shrugs", Side: SideBoth, Type: OutcomeGood, Chance: ChanceMedium,
				Text: "%s takes it on the chin", Detail: "No lasting harm done"},
			{Name: "Vents", Side: SideBoth, Type: OutcomeNeutral, Chance: ChanceHigh,
				Text: "%s vents to anyone who'll listen", Detail: "Nothing comes of it"},
			{Name: "Stressed", Side: SideBoth, Type: OutcomeBad, Chance: ChanceMedium, Effect: "ActorStressed",
				Text: "%s can't stop thinking about it", Detail: "Becomes STRESSED"},
			{Name: "Badmouths", Side: SideBoth, Type: OutcomeBad, Chance: ChanceMedium, Target: TargetPlayer, Effect: "PlayerRenownMinus1",
				Criteria: []Criterion{CriterionPlayerHasRenown}, Text: "%s badmouths you to anyone who'll listen", Detail: "You lose Renown"},
			{Name: "Threatens", Side: SideBoth, Type: OutcomeBad, Chance: ChanceLow, Effect: "ActorThreatens",
				Criteria: []Criterion{CriterionActorNotThreatening}, Text: "%s threatens to go public", Detail: "Removing them now costs twice as much"},
			{Name: "Blackmails", Side: SideBoth, Type: OutcomeBad, Chance: ChanceMedium, Effect: "ActorBlackmails",
				Criteria: []Criterion{CriterionActorKnowsSecret}, Text: "%s threatens to reveal what they know", Detail: "Becomes a BLACKMAILER"},
			{Name: "Leaks", Side: SideResistance, Type: OutcomeBad, Chance: ChanceLow, Target: TargetPlayer, Effect: "PlayerInvisibilityMinus1",
				Text: "%s talks a little too freely", Detail: "Your Invisibility drops"},
			{Name: "Kills", Side: SideResistance, Type: OutcomeBad, Chance: ChanceHigh, Effect: "ActorKillsRandom",
				Criteria: []Criterion{CriterionActorIsPsychopath, CriterionOtherActorsOnMap}, Text: "%s snaps", Detail: "A colleague pays the price"},
			{Name: "Walks Off With Gear", Side: SideBoth, Type: OutcomeBad, Chance: ChanceLow, Effect: "ActorLosesGear",
				Criteria: []Criterion{CriterionActorHasGear}, Text: "%s walks off with their kit", Detail: "The gear is gone"},
			{Name: "Resigns", Side: SideBoth, Type: OutcomeBad, Chance: ChanceLow, Resigns: true,
				Text: "%s has had enough and walks out", Detail: "Resigns from your service"},
		},
	}
}

// Default loads the stock content.
func Default() (*Catalog, error) {
	return Load(DefaultDefinitions())
}
