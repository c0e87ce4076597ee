package catalog

import "github.com/julianstephens/muhasabah/internal/models"

// Sins is the static sin catalog. Each occurrence recorded on a day costs
// the flat sin penalty; duplicates are allowed.
var Sins = []models.SinDefinition{
	// Sins of the tongue
	{ID: "ghibat", Title: "Backbiting"},
	{ID: "dorough", Title: "Lying, serious or joking"},
	{ID: "tohmat", Title: "Slander and false accusation"},
	{ID: "masakhara", Title: "Mocking and ridiculing others"},
	{ID: "fahashi", Title: "Profanity and verbal abuse"},
	{ID: "sokhan_chini", Title: "Talebearing"},
	{ID: "bad_gholi", Title: "Breaking promises"},
	{ID: "mojadele", Title: "Pointless argument and obstinacy"},
	{ID: "ayb_juyi", Title: "Faultfinding and exposing others' flaws"},
	{ID: "raz_dari", Title: "Revealing others' secrets"},
	{ID: "ghasam_dorough", Title: "False oath"},
	{ID: "shahadat_dorough", Title: "False testimony"},
	{ID: "minnat", Title: "Reproaching after a good deed"},
	{ID: "zakhm_zaban", Title: "Cutting remarks"},
	{ID: "tamalloq", Title: "Unwarranted flattery"},
	{ID: "shaye_parakani", Title: "Spreading unverified rumors"},

	// Sins of the eye, the ear, and contact
	{ID: "negah_haram", Title: "Forbidden gaze, in person or online"},
	{ID: "goushe_haram", Title: "Listening to forbidden music"},
	{ID: "goushe_ghibat", Title: "Listening to backbiting in silence"},
	{ID: "negah_tahghir", Title: "Contemptuous look at others"},

	// Vices of the heart
	{ID: "khasm", Title: "Unjustified anger and aggression"},
	{ID: "hasad", Title: "Envy"},
	{ID: "takabbor", Title: "Arrogance and self-superiority"},
	{ID: "riya", Title: "Showing off in worship or charity"},
	{ID: "ojb", Title: "Self-conceit"},
	{ID: "kineh", Title: "Grudge against a believer"},
	{ID: "sue_zan", Title: "Ill suspicion of others"},
	{ID: "qezavat", Title: "Hasty judgment"},
	{ID: "tama", Title: "Greed for others' property"},
	{ID: "naomidi", Title: "Despair of divine mercy"},
	{ID: "nasopasi", Title: "Ingratitude"},
	{ID: "bad_akhlaghi", Title: "Ill temper with family or people"},
	{ID: "nifaq", Title: "Hypocrisy and duplicity"},

	// Rights of others and social conduct
	{ID: "azar_waledain", Title: "Hurting or disrespecting parents"},
	{ID: "hagh_nas_mali", Title: "Unpaid financial debt"},
	{ID: "hagh_nas_aberoo", Title: "Ruining a believer's reputation"},
	{ID: "azar_hamsaye", Title: "Harming a neighbor"},
	{ID: "ghat_rahem", Title: "Severing family ties"},
	{ID: "khianat_amanat", Title: "Betraying a trust"},
	{ID: "kam_foroushi", Title: "Short-changing in trade"},
	{ID: "reshve", Title: "Giving or taking bribes"},
	{ID: "ghanoon_shekani", Title: "Lawbreaking"},
	{ID: "azar_heyvan", Title: "Harming animals"},
	{ID: "tahghir_momen", Title: "Belittling a believer"},

	// Neglect and personal conduct
	{ID: "israf", Title: "Wastefulness"},
	{ID: "talaf_vaqt", Title: "Wasting time in idleness"},
	{ID: "tanbaly_namaz", Title: "Taking prayer lightly or delaying it"},
	{ID: "porkhori", Title: "Overeating"},
	{ID: "ghaflet_yad_khoda", Title: "Heedlessness of remembrance"},
	{ID: "ozr_tarashi", Title: "Justifying sin with excuses"},
	{ID: "shekan_ahd_khoda", Title: "Breaking repentance"},
	{ID: "tark_talom", Title: "Neglecting needed religious learning"},
}

// FindSin returns the definition for a sin id.
func FindSin(id string) (models.SinDefinition, bool) {
	for _, s := range Sins {
		if s.ID == id {
			return s, true
		}
	}
	return models.SinDefinition{}, false
}
