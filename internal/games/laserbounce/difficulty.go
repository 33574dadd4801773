package laserbounce

// advanceDifficulty applies every tier advance and weapon grant the current
// score has earned. Each threshold is applied exactly once, even when the
// score jumps across several of them in one tick.
func (s *Sim) advanceDifficulty(run *Run) {
	if step := s.rules.ScoreStep; step > 0 {
		speedup := s.rules.Cfg.Enemy.TierSpeedup
		for run.Score >= (run.Tier+1)*step {
			run.Tier++
			run.Enemies.Each(func(_ ID, e *Enemy) bool {
				if e.Active {
					e.DX *= speedup
					e.DY *= speedup
				}
				return true
			})
			s.spawner.SpawnEnemy(run)
			s.log.Debug("tier advanced", "run", run.ID, "tier", run.Tier, "enemies", run.Enemies.Len())
		}
	}

	lc := s.rules.Cfg.Laser
	wasUnlocked := run.Unlocked
	if !run.Unlocked && run.Score >= lc.UnlockScore {
		run.Unlocked = true
		run.Ammo = lc.AmmoPerGrant
		run.UnlockTier = 1
		run.Banner = lc.BannerTicks
		run.BannerKind = BannerUnlocked
		s.ev.cue(CueUnlock)
		s.ev.cue(CueMusicDuck)
		s.log.Info("laser unlocked", "run", run.ID, "score", run.Score, "ammo", run.Ammo)
	}

	if run.Unlocked && lc.RechargeEvery > 0 {
		target := (run.Score-lc.UnlockScore)/lc.RechargeEvery + 1
		if target > run.UnlockTier {
			grants := target - run.UnlockTier
			run.Ammo += grants * lc.AmmoPerGrant
			run.UnlockTier = target
			if wasUnlocked {
				run.Banner = lc.BannerTicks
				run.BannerKind = BannerRecharged
				s.ev.cue(CueMusicDuck)
			}
			s.log.Info("laser recharged", "run", run.ID, "score", run.Score, "grants", grants, "ammo", run.Ammo)
		}
	}
}
