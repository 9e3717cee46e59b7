package catalog

import "sixfactors/internal/model"

// The inventory covers the six factors with four statements each, in catalog
// order: honesty-humility, emotionality, extraversion, agreeableness,
// conscientiousness, openness. IDs are assigned from slice position so the
// order here is the wire contract.
func sixFactorsQuestions() []model.Question {
	labels := [][2]string{
		// Honesty-Humility
		{"I would never accept a bribe, even a large one.", "Je n'accepterais jamais un pot-de-vin, même important."},
		{"I deserve more respect than the average person.", "Je mérite plus de respect que la moyenne des gens."},
		{"I would not use flattery to get a raise or promotion.", "Je n'utiliserais pas la flatterie pour obtenir une augmentation ou une promotion."},
		{"Having a lot of money is not especially important to me.", "Avoir beaucoup d'argent n'est pas particulièrement important pour moi."},
		// Emotionality
		{"I worry a lot less than most people do.", "Je m'inquiète beaucoup moins que la plupart des gens."},
		{"I need emotional support from someone else when I suffer a painful experience.", "J'ai besoin du soutien émotionnel de quelqu'un quand je vis une expérience douloureuse."},
		{"I feel like crying when I see other people crying.", "J'ai envie de pleurer quand je vois d'autres personnes pleurer."},
		{"I would feel afraid if I had to travel in bad weather conditions.", "J'aurais peur de voyager par mauvais temps."},
		// Extraversion
		{"I feel comfortable approaching someone I find attractive.", "Je me sens à l'aise pour aborder quelqu'un que je trouve attirant."},
		{"I prefer jobs that involve active social interaction to those that involve working alone.", "Je préfère les métiers impliquant des interactions sociales à ceux où l'on travaille seul."},
		{"I rarely feel energetic or enthusiastic.", "Je me sens rarement énergique ou enthousiaste."},
		{"The first thing I always do in a new place is make friends.", "La première chose que je fais dans un nouvel endroit est de me faire des amis."},
		// Agreeableness
		{"I rarely hold a grudge, even against people who have badly wronged me.", "Je garde rarement rancune, même envers ceux qui m'ont fait beaucoup de tort."},
		{"People sometimes tell me that I am too critical of others.", "On me dit parfois que je suis trop critique envers les autres."},
		{"I tend to be lenient in judging other people.", "J'ai tendance à être indulgent quand je juge les autres."},
		{"I find it hard to keep my temper when people insult me.", "J'ai du mal à garder mon calme quand on m'insulte."},
		// Conscientiousness
		{"I plan ahead and organize things to avoid scrambling at the last minute.", "Je planifie et m'organise pour éviter de me précipiter à la dernière minute."},
		{"I often push myself very hard when trying to achieve a goal.", "Je me donne souvent à fond pour atteindre un objectif."},
		{"People often call me a perfectionist.", "On me qualifie souvent de perfectionniste."},
		{"I make decisions based on the feeling of the moment rather than on careful thought.", "Je prends mes décisions sur un coup de tête plutôt qu'après mûre réflexion."},
		// Openness to Experience
		{"I would be quite bored by a visit to an art gallery.", "Une visite dans une galerie d'art m'ennuierait."},
		{"I'm interested in learning about the history and politics of other countries.", "J'aime découvrir l'histoire et la politique d'autres pays."},
		{"I like people who have unconventional views.", "J'aime les personnes qui ont des idées non conventionnelles."},
		{"I think that paying attention to radical ideas is a waste of time.", "Je pense que prêter attention aux idées radicales est une perte de temps."},
	}

	questions := make([]model.Question, len(labels))
	for i, l := range labels {
		questions[i] = model.Question{
			ID: i,
			Labels: map[string]string{
				"en": l[0],
				"fr": l[1],
			},
		}
	}

	return questions
}

func sixFactorsAnswerCodes() model.AnswerCodes {
	return model.AnswerCodes{
		"en": {
			"I agree":      model.AnswerCodeAgree,
			"I don't know": model.AnswerCodeNeutral,
			"I disagree":   model.AnswerCodeDisagree,
		},
		"fr": {
			"Je suis d'accord":        model.AnswerCodeAgree,
			"Je ne sais pas":          model.AnswerCodeNeutral,
			"Je ne suis pas d'accord": model.AnswerCodeDisagree,
		},
	}
}
