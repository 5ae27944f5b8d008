package services

import "html/template"

// Both confirmation emails share the same data shape; the operator copy leads
// with the code to hand to the customer, the customer copy with the
// confirmation banner.

const operatorMailTemplate = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: linear-gradient(135deg, #2d6a4f 0%, #1b4332 100%); padding: 30px; text-align: center;">
    <h1 style="color: #ffffff; margin: 0; font-size: 28px;">🍽️ {{.RestaurantName}}</h1>
    <p style="color: #d8f3dc; margin: 10px 0 0 0; font-size: 14px;">Restaurant Maghrébin - Nancy</p>
  </div>
  <div style="padding: 30px; background-color: #f8f9fa;">
    <h2 style="color: #2d6a4f; margin-top: 0;">Nouvelle Commande #{{.OrderCode}}</h2>
    <div style="background: #fef3c7; border: 3px solid #f59e0b; border-radius: 12px; padding: 20px; margin: 20px 0; text-align: center;">
      <p style="margin: 0 0 10px 0; color: #92400e; font-size: 16px; font-weight: bold;">📋 NUMÉRO DE COMMANDE</p>
      <p style="margin: 0; font-size: 48px; font-weight: bold; color: #f59e0b; letter-spacing: 3px;">#{{.OrderCode}}</p>
      <p style="margin: 10px 0 0 0; color: #92400e; font-size: 14px;">À communiquer au client si besoin</p>
    </div>
    <div style="background: white; padding: 20px; border-radius: 8px; margin-bottom: 20px;">
      <h3 style="margin: 0 0 15px 0; color: #1f2937;">👤 Client</h3>
      <p style="margin: 5px 0; color: #4b5563;"><strong>Nom :</strong> {{.CustomerName}}</p>
      <p style="margin: 5px 0; color: #4b5563;"><strong>Téléphone :</strong> {{.CustomerPhone}}</p>
      <p style="margin: 5px 0; color: #4b5563;"><strong>Email :</strong> {{.CustomerEmail}}</p>
    </div>
    <div style="background: white; padding: 20px; border-radius: 8px; margin-bottom: 20px;">
      <h3 style="margin: 0 0 15px 0; color: #1f2937;">📦 Type de commande</h3>
      <p style="margin: 5px 0; color: #4b5563; font-weight: bold;">{{if .IsDelivery}}🚗 LIVRAISON{{else}}📦 À EMPORTER{{end}}</p>
      {{if .IsDelivery}}
      <p style="margin: 5px 0; color: #4b5563;">{{.Address}}</p>
      <p style="margin: 5px 0; color: #4b5563;">{{.ZipCode}} {{.City}}</p>
      {{end}}
      {{if .Instructions}}<p style="margin: 10px 0 0 0; color: #4b5563; font-style: italic;"><strong>Instructions :</strong> {{.Instructions}}</p>{{end}}
    </div>
    <div style="background: white; padding: 20px; border-radius: 8px; margin-bottom: 20px;">
      <h3 style="margin: 0 0 15px 0; color: #1f2937;">🛒 Articles</h3>
      {{range .Items}}
      <div style="padding: 10px 0; border-bottom: 1px solid #e5e7eb;">
        <strong style="color: #1f2937;">{{.Quantity}}x {{.Name}}</strong>
        {{if .Choices}}<div style="color: #6b7280; font-size: 13px; margin-top: 4px;">{{.Choices}}</div>{{end}}
        <span style="color: #2d6a4f; font-weight: bold; float: right;">{{.Total}}</span>
      </div>
      {{end}}
    </div>
    <div style="background: #2d6a4f; color: white; padding: 20px; border-radius: 8px; text-align: right;">
      <p style="margin: 5px 0; font-size: 14px;">Sous-total : {{.Subtotal}}</p>
      {{if .HasDeliveryFee}}<p style="margin: 5px 0; font-size: 14px;">Frais de livraison : {{.DeliveryFee}}</p>{{end}}
      <p style="margin: 15px 0 0 0; font-size: 24px; font-weight: bold;">Total : {{.Total}}</p>
    </div>
  </div>
</div>
`

const customerMailTemplate = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: linear-gradient(135deg, #2d6a4f 0%, #1b4332 100%); padding: 30px; text-align: center;">
    <h1 style="color: #ffffff; margin: 0; font-size: 28px;">🍽️ {{.RestaurantName}}</h1>
    <p style="color: #d8f3dc; margin: 10px 0 0 0; font-size: 14px;">Restaurant Maghrébin - Nancy</p>
  </div>
  <div style="padding: 30px; background-color: #f8f9fa;">
    <div style="background: #d1fae5; border-left: 4px solid #2d6a4f; padding: 15px; border-radius: 4px; margin-bottom: 20px;">
      <h2 style="color: #2d6a4f; margin: 0 0 10px 0; font-size: 20px;">✅ Commande confirmée !</h2>
      <p style="margin: 0; color: #1f2937;">Votre commande a bien été reçue et sera préparée dans les plus brefs délais.</p>
      <p style="margin: 10px 0 0 0; color: #1f2937; font-weight: bold;">Merci de communiquer votre numéro de commande ci-dessous lors de la réception.</p>
    </div>
    <div style="background: #d1fae5; border: 3px solid #2d6a4f; border-radius: 12px; padding: 20px; margin: 20px 0; text-align: center;">
      <p style="margin: 0 0 10px 0; color: #1b4332; font-size: 16px; font-weight: bold;">📋 VOTRE NUMÉRO DE COMMANDE</p>
      <p style="margin: 0; font-size: 48px; font-weight: bold; color: #2d6a4f; letter-spacing: 3px;">#{{.OrderCode}}</p>
      <p style="margin: 10px 0 0 0; color: #1b4332; font-size: 14px;">Conservez ce numéro pour le suivi de votre commande</p>
    </div>
    <div style="background: white; padding: 20px; border-radius: 8px; margin-bottom: 20px;">
      <h3 style="margin: 0 0 15px 0; color: #1f2937;">📦 Récapitulatif</h3>
      {{range .Items}}
      <div style="padding: 10px 0; border-bottom: 1px solid #e5e7eb;">
        <strong style="color: #1f2937;">{{.Quantity}}x {{.Name}}</strong>
        {{if .Choices}}<div style="color: #6b7280; font-size: 13px; margin-top: 4px;">{{.Choices}}</div>{{end}}
        <span style="color: #2d6a4f; font-weight: bold; float: right;">{{.Total}}</span>
      </div>
      {{end}}
      <div style="margin-top: 15px; padding-top: 15px; border-top: 2px solid #2d6a4f;">
        <p style="margin: 5px 0;">Sous-total : {{.Subtotal}}</p>
        {{if .HasDeliveryFee}}<p style="margin: 5px 0;">Frais de livraison : {{.DeliveryFee}}</p>{{end}}
        <p style="font-size: 20px; font-weight: bold; color: #2d6a4f; margin-top: 10px;">Total : {{.Total}}</p>
      </div>
    </div>
    <div style="background: white; padding: 20px; border-radius: 8px; margin-bottom: 20px;">
      <h3 style="margin: 0 0 15px 0; color: #1f2937;">📍 Informations</h3>
      <p style="margin: 5px 0; color: #4b5563;"><strong>Type :</strong> {{if .IsDelivery}}Livraison{{else}}À emporter{{end}}</p>
      {{if .IsDelivery}}
      <p style="margin: 5px 0; color: #4b5563;"><strong>Adresse :</strong> {{.Address}}, {{.ZipCode}} {{.City}}</p>
      {{else}}
      <p style="margin: 5px 0; color: #4b5563;"><strong>À retirer à :</strong> {{.RestaurantAddress}}</p>
      {{end}}
      {{if .Instructions}}<p style="margin: 5px 0; color: #4b5563; font-style: italic;"><strong>Vos instructions :</strong> {{.Instructions}}</p>{{end}}
    </div>
    <div style="background: #f3f4f6; padding: 15px; border-radius: 8px; text-align: center;">
      <p style="margin: 0; color: #4b5563;">
        <strong>📞 Besoin d'aide ?</strong><br/>
        Contactez-nous au {{.RestaurantPhone}} ou répondez directement à cet email.
      </p>
    </div>
    <p style="text-align: center; color: #6b7280; font-size: 14px; margin-top: 20px;">
      Merci de votre confiance !<br/>
      L'équipe des Saveurs du Maghreb
    </p>
  </div>
</div>
`

var (
	operatorTmpl = template.Must(template.New("operator").Parse(operatorMailTemplate))
	customerTmpl = template.Must(template.New("customer").Parse(customerMailTemplate))
)
